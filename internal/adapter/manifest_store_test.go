package adapter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

func TestPathFor(t *testing.T) {
	s := NewLocalManifestStore()

	root := filepath.Join("home", "ryujinx", "mods", "contents", "0100770008dd8000")

	path, ok := s.PathFor(m.Path(root))
	require.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join("home", "ryujinx", "games", "0100770008dd8000", "mods.json")), path)
}

func TestPathFor_OutsideLayout(t *testing.T) {
	s := NewLocalManifestStore()

	tests := []string{
		filepath.Join("some", "random", "dir"),
		filepath.Join("mods", "wrong", "0100770008dd8000"),
		"short",
	}

	for _, root := range tests {
		_, ok := s.PathFor(m.Path(root))
		assert.False(t, ok, root)
	}
}

func TestPathFor_CaseInsensitive(t *testing.T) {
	s := NewLocalManifestStore()

	root := filepath.Join("home", "Mods", "Contents", "0100770008dd8000")

	_, ok := s.PathFor(m.Path(root))
	assert.True(t, ok)
}

func TestManifestWrite(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "mods", "contents", "0100770008dd8000")
	require.NoError(t, os.MkdirAll(root, 0o750))

	s := NewLocalManifestStore()

	entries := []m.ManifestEntry{
		{Name: "01_Alpha", Path: filepath.Join(root, "01_Alpha"), Enabled: true},
		{Name: "~Beta", Path: filepath.Join(root, "~Beta"), Enabled: false},
	}

	require.NoError(t, s.Write(m.Path(root), entries))

	data, err := os.ReadFile(filepath.Join(base, "games", "0100770008dd8000", "mods.json"))
	require.NoError(t, err)

	// The emulator writes 2-space indented JSON; match it.
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"mods\": ["))

	var manifest m.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	require.Len(t, manifest.Mods, 2)
	assert.Equal(t, "01_Alpha", manifest.Mods[0].Name)
	assert.True(t, manifest.Mods[0].Enabled)
	assert.False(t, manifest.Mods[1].Enabled)
}

func TestManifestWrite_OutsideLayoutIsSkipped(t *testing.T) {
	root := t.TempDir()

	s := NewLocalManifestStore()

	require.NoError(t, s.Write(m.Path(root), []m.ManifestEntry{{Name: "01_Alpha"}}))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
