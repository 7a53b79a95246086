package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

func TestPagerModel_ViewBeforeSize(t *testing.T) {
	model := newPagerModel("Mod Load Order", []string{"a", "b"})
	assert.Contains(t, model.View(), "loading")
}

func TestPagerModel_WindowSizeInitializesViewport(t *testing.T) {
	model := newPagerModel("Mod Load Order", []string{"line one", "line two"})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	pager, ok := updated.(pagerModel)
	require.True(t, ok)
	assert.True(t, pager.ready)

	view := pager.View()
	assert.Contains(t, view, "Mod Load Order")
	assert.Contains(t, view, "line one")
	assert.Contains(t, view, "q to quit")
}

func TestPagerModel_QuitKeys(t *testing.T) {
	model := newPagerModel("t", []string{"x"})

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if key == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}

		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		_, cmd := model.Update(msg)
		require.NotNil(t, cmd, key)
		assert.Equal(t, tea.Quit(), cmd(), key)
	}
}

func TestModLine(t *testing.T) {
	res := m.Resolution{
		Labels: map[string][]m.ModLabel{
			"01_Alpha": {m.LabelOverride},
			"02_Beta":  {m.LabelConflict},
			"03_Gamma": {m.LabelClean},
		},
	}

	tests := []struct {
		name string
		mod  m.Mod
		want string
	}{
		{"cheat only", m.Mod{CleanName: "Pack", CheatOnly: true}, "[cheat only]"},
		{"disabled", m.Mod{CleanName: "Off", Enabled: false}, "[disabled]"},
		{"conflicting", m.Mod{Name: "02_Beta", CleanName: "Beta", Enabled: true}, "[conflicts]"},
		{"overriding", m.Mod{Name: "01_Alpha", CleanName: "Alpha", Enabled: true}, "[overrides]"},
		{"clean", m.Mod{Name: "03_Gamma", CleanName: "Gamma", Enabled: true}, "[no conflicts]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, strings.Contains(modLine(tt.mod, res), tt.want))
		})
	}
}

func TestFileLine(t *testing.T) {
	res := m.Resolution{
		Claims: map[m.RelPath]string{
			"romfs/common.bin": "01_Alpha",
			"romfs/alpha.bin":  "01_Alpha",
		},
		Conflicts: []m.ConflictRecord{
			{Path: "romfs/common.bin", Winner: "01_Alpha", Losers: []string{"02_Beta"}},
		},
	}

	assert.Contains(t, fileLine("01_Alpha", "romfs/common.bin", res), "overrides")
	assert.Contains(t, fileLine("02_Beta", "romfs/common.bin", res), "overridden by Alpha")
	assert.Contains(t, fileLine("01_Alpha", "romfs/alpha.bin", res), "loaded")
	assert.Contains(t, fileLine("02_Beta", "romfs/unseen.bin", res), "not loaded")
}
