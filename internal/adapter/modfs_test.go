package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScanMods_LoadOrderAndCheatsFolder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "02_Beta", "romfs", "b.bin"), "beta")
	writeTestFile(t, filepath.Join(root, "01_Alpha", "romfs", "a.bin"), "alpha")
	writeTestFile(t, filepath.Join(root, "10_Gamma", "romfs", "g.bin"), "gamma")
	writeTestFile(t, filepath.Join(root, "~Delta", "romfs", "d.bin"), "delta")
	writeTestFile(t, filepath.Join(root, "cheats", "enabled.txt"), "")

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, "cheats", scan.CheatsFolder)

	require.Len(t, scan.Mods, 4)
	assert.Equal(t, "01_Alpha", scan.Mods[0].Name)
	assert.Equal(t, "02_Beta", scan.Mods[1].Name)
	// Natural sort: 10 comes after 2, not between 1 and 2.
	assert.Equal(t, "10_Gamma", scan.Mods[2].Name)
	assert.Equal(t, "~Delta", scan.Mods[3].Name)

	assert.Equal(t, "Alpha", scan.Mods[0].CleanName)
	assert.True(t, scan.Mods[0].Enabled)
	assert.False(t, scan.Mods[3].Enabled)

	for i, mod := range scan.Mods {
		assert.Equal(t, i+1, mod.Rank)
	}
}

func TestScanMods_TitleIDFromLayout(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "mods", "contents", "0100770008dd8000")
	require.NoError(t, os.MkdirAll(root, 0o750))

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, "0100770008dd8000", scan.TitleID)

	plain, err := a.ScanMods(context.Background(), m.Path(base))
	require.NoError(t, err)
	assert.Empty(t, plain.TitleID)
}

func TestScanMods_CheatOnlyDetection(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "CheatPack", "cheats", "codes.txt"), "[X]\ncode")
	writeTestFile(t, filepath.Join(root, "Hybrid", "cheats", "codes.txt"), "[Y]\ncode")
	writeTestFile(t, filepath.Join(root, "Hybrid", "romfs", "h.bin"), "h")

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)

	cheatPack, ok := scan.Find("CheatPack")
	require.True(t, ok)
	assert.True(t, cheatPack.CheatOnly)
	// Files under a cheats directory never enter the overlay.
	assert.Empty(t, cheatPack.Files)

	hybrid, ok := scan.Find("Hybrid")
	require.True(t, ok)
	assert.False(t, hybrid.CheatOnly)
	assert.Contains(t, hybrid.Files, m.RelPath("romfs/h.bin"))
	assert.NotContains(t, hybrid.Files, m.RelPath("cheats/codes.txt"))
}

func TestScanMods_DottedNameIsNotCheatsFolder(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Awesome.cheats", "romfs", "a.bin"), "a")

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Empty(t, scan.CheatsFolder)
	require.Len(t, scan.Mods, 1)
	assert.Equal(t, "Awesome.cheats", scan.Mods[0].CleanName)
}

func TestScanMods_HashesDistinguishContent(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "01_A", "romfs", "x.bin"), "same")
	writeTestFile(t, filepath.Join(root, "02_B", "romfs", "x.bin"), "different")

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)

	require.Len(t, scan.Mods, 2)
	assert.NotEqual(t,
		scan.Mods[0].Files[m.RelPath("romfs/x.bin")],
		scan.Mods[1].Files[m.RelPath("romfs/x.bin")])
}

func TestScanMods_SampleTree(t *testing.T) {
	root := filepath.Join("..", "..", "examples", "sample-mods")

	a := NewLocalModFSAdapter()

	scan, err := a.ScanMods(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, "cheats", scan.CheatsFolder)
	require.Len(t, scan.Mods, 4)
	assert.Equal(t, "01_HD Textures", scan.Mods[0].Name)
	assert.Equal(t, "02_Faster Weapons", scan.Mods[1].Name)

	cheatPack, ok := scan.Find("Cheat Pack")
	require.True(t, ok)
	assert.True(t, cheatPack.CheatOnly)

	overhaul, ok := scan.Find("Big Overhaul")
	require.True(t, ok)
	assert.False(t, overhaul.Enabled)
	assert.Contains(t, overhaul.Files, m.RelPath("romfs/data/weapons.bin"))
}

func TestScanMods_MissingRoot(t *testing.T) {
	a := NewLocalModFSAdapter()

	_, err := a.ScanMods(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope")))
	assert.Error(t, err)
}

func TestApplyRenames_SwapSucceeds(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "01_Alpha", "romfs", "a.bin"), "alpha")
	writeTestFile(t, filepath.Join(root, "02_Beta", "romfs", "b.bin"), "beta")

	a := NewLocalModFSAdapter()

	// Swap the two mods: every target is also a source.
	ops := []m.RenameOp{
		{From: "01_Alpha", To: "02_Alpha"},
		{From: "02_Beta", To: "01_Beta"},
	}

	require.NoError(t, a.ApplyRenames(context.Background(), m.Path(root), ops))

	assert.DirExists(t, filepath.Join(root, "02_Alpha"))
	assert.DirExists(t, filepath.Join(root, "01_Beta"))
	assert.FileExists(t, filepath.Join(root, "02_Alpha", "romfs", "a.bin"))
}

func TestApplyRenames_DuplicateTarget(t *testing.T) {
	a := NewLocalModFSAdapter()

	ops := []m.RenameOp{
		{From: "01_Alpha", To: "01_Same"},
		{From: "02_Beta", To: "01_Same"},
	}

	err := a.ApplyRenames(context.Background(), m.Path(t.TempDir()), ops)
	assert.ErrorContains(t, err, "twice")
}

func TestApplyRenames_TargetExists(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "Alpha", "romfs", "a.bin"), "alpha")
	writeTestFile(t, filepath.Join(root, "01_Alpha", "romfs", "other.bin"), "other")

	a := NewLocalModFSAdapter()

	err := a.ApplyRenames(context.Background(), m.Path(root), []m.RenameOp{
		{From: "Alpha", To: "01_Alpha"},
	})
	assert.ErrorContains(t, err, "already exists")

	// Nothing was touched.
	assert.DirExists(t, filepath.Join(root, "Alpha"))
	assert.DirExists(t, filepath.Join(root, "01_Alpha"))
}

func TestInstallDir(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "FancyMod")
	writeTestFile(t, filepath.Join(src, "romfs", "f.bin"), "fancy")

	a := NewLocalModFSAdapter()

	require.NoError(t, a.InstallDir(context.Background(), m.Path(src), m.Path(root), "FancyMod"))
	assert.FileExists(t, filepath.Join(root, "FancyMod", "romfs", "f.bin"))

	err := a.InstallDir(context.Background(), m.Path(src), m.Path(root), "FancyMod")
	assert.ErrorIs(t, err, ErrModExists)
}

func TestInstallDir_SourceNotADirectory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(t.TempDir(), "file.zip")
	writeTestFile(t, src, "not a dir")

	a := NewLocalModFSAdapter()

	err := a.InstallDir(context.Background(), m.Path(src), m.Path(root), "file.zip")
	assert.ErrorContains(t, err, "not a directory")
}

func TestRemoveMod(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "01_Alpha", "romfs", "a.bin"), "alpha")

	a := NewLocalModFSAdapter()

	require.NoError(t, a.RemoveMod(context.Background(), m.Path(root), "01_Alpha"))
	assert.NoDirExists(t, filepath.Join(root, "01_Alpha"))

	err := a.RemoveMod(context.Background(), m.Path(root), "01_Alpha")
	assert.ErrorIs(t, err, ErrModNotFound)
}
