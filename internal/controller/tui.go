package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

var styleTitle = lipgloss.NewStyle().Bold(true)

// TUI implements UI with Bubble Tea pagination for long listings. Short
// output and everything that is not a listing is delegated to the plain
// renderer.
type TUI struct {
	output *os.File
	plain  UI
}

// NewTUI creates a TUI writing to output, falling back to plain for short
// or non-paginated displays.
func NewTUI(output *os.File, plain UI) *TUI {
	return &TUI{output: output, plain: plain}
}

// DisplayMods paginates the mod table when it does not fit the terminal.
func (t *TUI) DisplayMods(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	lines := make([]string, 0, len(scan.Mods))
	for _, mod := range scan.Mods {
		lines = append(lines, modLine(mod, res))
	}

	return t.page(ctx, "Mod Load Order", lines, func() error {
		return t.plain.DisplayMods(ctx, scan, res)
	})
}

// DisplayConflicts delegates to the plain renderer.
func (t *TUI) DisplayConflicts(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	return t.plain.DisplayConflicts(ctx, scan, res)
}

// DisplayTree paginates the file tree, which grows with every mod file.
func (t *TUI) DisplayTree(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	var lines []string

	for _, mod := range scan.Mods {
		lines = append(lines, modLine(mod, res))

		if !mod.Enabled || mod.CheatOnly {
			continue
		}

		for _, path := range mod.Paths() {
			lines = append(lines, "  "+fileLine(mod.Name, path, res))
		}
	}

	return t.page(ctx, "Mod Files", lines, func() error {
		return t.plain.DisplayTree(ctx, scan, res)
	})
}

// DisplayCheats delegates to the plain renderer.
func (t *TUI) DisplayCheats(ctx context.Context, mod string, cheats []m.Cheat, sel m.CheatSelection) error {
	return t.plain.DisplayCheats(ctx, mod, cheats, sel)
}

// DisplayEnabledDiff delegates to the plain renderer.
func (t *TUI) DisplayEnabledDiff(ctx context.Context, path m.Path, before, after string) error {
	return t.plain.DisplayEnabledDiff(ctx, path, before, after)
}

// Status delegates to the plain renderer.
func (t *TUI) Status(ctx context.Context, format string, args ...any) {
	t.plain.Status(ctx, format, args...)
}

// page runs the pager when lines overflow the terminal, otherwise falls
// back to the plain renderer.
func (t *TUI) page(ctx context.Context, title string, lines []string, fallback func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, height, err := term.GetSize(int(t.output.Fd()))
	if err != nil || len(lines)+3 <= height {
		return fallback()
	}

	model := newPagerModel(title, lines)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func modLine(mod m.Mod, res m.Resolution) string {
	switch {
	case mod.CheatOnly:
		return fmt.Sprintf("%s  %s", mod.CleanName, styleCheat.Render("[cheat only]"))
	case !mod.Enabled:
		return fmt.Sprintf("%s  %s", mod.CleanName, styleDisabled.Render("[disabled]"))
	case res.HasLabel(mod.Name, m.LabelConflict):
		return fmt.Sprintf("%s  %s", mod.CleanName, styleConflict.Render("[conflicts]"))
	case res.HasLabel(mod.Name, m.LabelOverride):
		return fmt.Sprintf("%s  %s", mod.CleanName, styleOverride.Render("[overrides]"))
	default:
		return fmt.Sprintf("%s  [no conflicts]", mod.CleanName)
	}
}

func fileLine(mod string, path m.RelPath, res m.Resolution) string {
	status := res.StatusOf(mod, path)

	switch {
	case len(status.Overrides) > 0:
		return fmt.Sprintf("%s  %s", path, styleOverride.Render("overrides"))
	case status.OverriddenBy != "":
		return fmt.Sprintf("%s  %s", path, styleConflict.Render("overridden by "+m.StripPrefix(status.OverriddenBy)))
	case status.Loaded:
		return fmt.Sprintf("%s  loaded", path)
	default:
		return fmt.Sprintf("%s  %s", path, styleDisabled.Render("not loaded"))
	}
}

type pagerKeyMap struct {
	Quit key.Binding
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pagerModel is the Bubble Tea model wrapping a viewport over the rendered
// lines.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	keys     pagerKeyMap
	ready    bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{
		title:   title,
		content: strings.Join(lines, "\n"),
		keys:    defaultPagerKeys(),
	}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Quit) {
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Reserve two lines for the title and one for the footer.
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-3)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - 3
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	footer := fmt.Sprintf("%3.f%%  (q to quit)", p.viewport.ScrollPercent()*100)

	return styleTitle.Render(p.title) + "\n\n" + p.viewport.View() + "\n" + footer
}
