package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

func modWithFiles(name string, paths ...string) m.Mod {
	files := make(map[m.RelPath]string, len(paths))
	for _, p := range paths {
		files[m.RelPath(p)] = "hash-" + p
	}

	return m.Mod{
		Name:      name,
		CleanName: m.StripPrefix(name),
		Enabled:   true,
		Files:     files,
	}
}

func TestResolve_FirstClaimantWins(t *testing.T) {
	a := modWithFiles("01_A", "x", "y")
	b := modWithFiles("02_B", "y", "z")

	res, err := Resolve([]m.Mod{a, b})
	require.NoError(t, err)

	assert.Equal(t, "01_A", res.Claims["x"])
	assert.Equal(t, "01_A", res.Claims["y"])
	assert.Equal(t, "02_B", res.Claims["z"])

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, m.RelPath("y"), res.Conflicts[0].Path)
	assert.Equal(t, "01_A", res.Conflicts[0].Winner)
	assert.Equal(t, []string{"02_B"}, res.Conflicts[0].Losers)

	assert.True(t, res.HasLabel("01_A", m.LabelOverride))
	assert.False(t, res.HasLabel("01_A", m.LabelConflict))
	assert.True(t, res.HasLabel("02_B", m.LabelConflict))
	assert.False(t, res.HasLabel("02_B", m.LabelOverride))
}

func TestResolve_DuplicateIdentifier(t *testing.T) {
	a := modWithFiles("01_A", "x")
	dup := modWithFiles("01_A", "y")

	_, err := Resolve([]m.Mod{a, dup})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateModIdentifier)
}

func TestResolve_Pure(t *testing.T) {
	mods := []m.Mod{
		modWithFiles("01_A", "x", "y"),
		modWithFiles("02_B", "y", "z"),
		modWithFiles("03_C", "z"),
	}

	first, err := Resolve(mods)
	require.NoError(t, err)

	second, err := Resolve(mods)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_RemovalPromotesNextClaimant(t *testing.T) {
	a := modWithFiles("01_A", "y")
	b := modWithFiles("02_B", "y")

	res, err := Resolve([]m.Mod{a, b})
	require.NoError(t, err)
	assert.Equal(t, "01_A", res.Claims["y"])

	// Dropping the winner from the input hands the path to the next mod.
	res, err = Resolve([]m.Mod{b})
	require.NoError(t, err)
	assert.Equal(t, "02_B", res.Claims["y"])
	assert.Empty(t, res.Conflicts)
	assert.True(t, res.HasLabel("02_B", m.LabelClean))
}

func TestResolve_LosersInPriorityOrder(t *testing.T) {
	mods := []m.Mod{
		modWithFiles("01_A", "shared"),
		modWithFiles("02_B", "shared"),
		modWithFiles("03_C", "shared"),
	}

	res, err := Resolve(mods)
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "01_A", res.Conflicts[0].Winner)
	assert.Equal(t, []string{"02_B", "03_C"}, res.Conflicts[0].Losers)
}

func TestResolve_ConflictsSortedByPath(t *testing.T) {
	mods := []m.Mod{
		modWithFiles("01_A", "b", "a", "c"),
		modWithFiles("02_B", "c", "b", "a"),
	}

	res, err := Resolve(mods)
	require.NoError(t, err)

	require.Len(t, res.Conflicts, 3)
	assert.Equal(t, m.RelPath("a"), res.Conflicts[0].Path)
	assert.Equal(t, m.RelPath("b"), res.Conflicts[1].Path)
	assert.Equal(t, m.RelPath("c"), res.Conflicts[2].Path)
}

func TestResolve_OverrideAndConflictCoexist(t *testing.T) {
	mods := []m.Mod{
		modWithFiles("01_A", "x"),
		modWithFiles("02_B", "x", "y"),
		modWithFiles("03_C", "y"),
	}

	res, err := Resolve(mods)
	require.NoError(t, err)

	// B loses x to A but wins y against C.
	assert.True(t, res.HasLabel("02_B", m.LabelConflict))
	assert.True(t, res.HasLabel("02_B", m.LabelOverride))
	assert.False(t, res.HasLabel("02_B", m.LabelClean))
}

func TestResolve_ZeroPathMod(t *testing.T) {
	empty := m.Mod{Name: "01_Empty", CleanName: "Empty", Enabled: true}
	other := modWithFiles("02_Other", "x")

	res, err := Resolve([]m.Mod{empty, other})
	require.NoError(t, err)

	assert.Empty(t, res.Conflicts)
	assert.True(t, res.HasLabel("01_Empty", m.LabelClean))
	assert.Equal(t, "02_Other", res.Claims["x"])
}

func TestResolve_Empty(t *testing.T) {
	res, err := Resolve(nil)
	require.NoError(t, err)

	assert.Empty(t, res.Claims)
	assert.Empty(t, res.Conflicts)
	assert.Empty(t, res.Labels)
}

func TestResolutionStatusOf(t *testing.T) {
	mods := []m.Mod{
		modWithFiles("01_A", "x", "y"),
		modWithFiles("02_B", "y"),
	}

	res, err := Resolve(mods)
	require.NoError(t, err)

	winner := res.StatusOf("01_A", "y")
	assert.True(t, winner.Loaded)
	assert.Equal(t, []string{"02_B"}, winner.Overrides)

	loser := res.StatusOf("02_B", "y")
	assert.False(t, loser.Loaded)
	assert.Equal(t, "01_A", loser.OverriddenBy)

	sole := res.StatusOf("01_A", "x")
	assert.True(t, sole.Loaded)
	assert.Empty(t, sole.Overrides)

	unknown := res.StatusOf("01_A", "missing")
	assert.False(t, unknown.Loaded)
}
