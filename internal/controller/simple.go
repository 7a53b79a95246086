package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// Styles mirroring the original tool's legend: green for overriding mods,
// red for overridden ones, gray for disabled, orange for cheat-only.
var (
	styleOverride = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleConflict = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCheat    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a SimpleUI. Coloring is disabled when the output is
// not a terminal.
func NewSimpleUI(cmd *cobra.Command, color bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, color: color}
}

func (s *SimpleUI) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

// modStatus renders the classification cell for one mod.
func (s *SimpleUI) modStatus(mod m.Mod, res m.Resolution) string {
	switch {
	case mod.CheatOnly:
		return s.paint(styleCheat, "cheat only")
	case !mod.Enabled:
		return s.paint(styleDisabled, "disabled")
	}

	var parts []string

	if res.HasLabel(mod.Name, m.LabelOverride) {
		parts = append(parts, s.paint(styleOverride, string(m.LabelOverride)))
	}

	if res.HasLabel(mod.Name, m.LabelConflict) {
		parts = append(parts, s.paint(styleConflict, string(m.LabelConflict)))
	}

	if len(parts) == 0 {
		return string(m.LabelClean)
	}

	return strings.Join(parts, ", ")
}

// DisplayMods renders the load order table.
func (s *SimpleUI) DisplayMods(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Mod", "Enabled", "Status", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	for _, mod := range scan.Mods {
		enabled := "no"
		if mod.Enabled {
			enabled = "yes"
		}

		table.Append([]string{
			fmt.Sprintf("%d", mod.Rank),
			mod.CleanName,
			enabled,
			s.modStatus(mod, res),
			fmt.Sprintf("%d", len(mod.Files)),
		})
	}

	table.Render()

	s.printf("\n%s", buf.String())
	s.printf("\n%d mods, %d contested paths\n", len(scan.Mods), len(res.Conflicts))

	if scan.CheatsFolder != "" {
		s.printf("cheats folder: %s\n", scan.CheatsFolder)
	}

	return nil
}

// DisplayConflicts renders one row per contested path.
func (s *SimpleUI) DisplayConflicts(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(res.Conflicts) == 0 {
		s.printf("No conflicts: every path is claimed by exactly one enabled mod.\n")
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Winner", "Overridden"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rec := range res.Conflicts {
		losers := make([]string, 0, len(rec.Losers))
		for _, loser := range rec.Losers {
			losers = append(losers, m.StripPrefix(loser))
		}

		table.Append([]string{
			string(rec.Path),
			s.paint(styleOverride, m.StripPrefix(rec.Winner)),
			s.paint(styleConflict, strings.Join(losers, ", ")),
		})
	}

	table.Render()

	s.printf("\n%s", buf.String())
	s.printf("\n%d contested paths. The mod at the top of the load order takes priority.\n", len(res.Conflicts))

	return nil
}

// DisplayTree renders each mod followed by its files and their fate in the
// overlay.
func (s *SimpleUI) DisplayTree(ctx context.Context, scan m.ScanResult, res m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, mod := range scan.Mods {
		s.printf("%s\n", s.treeModLine(mod, res))

		if !mod.Enabled || mod.CheatOnly {
			continue
		}

		for _, path := range mod.Paths() {
			s.printf("  %s\n", s.treeFileLine(mod.Name, path, res))
		}
	}

	return nil
}

func (s *SimpleUI) treeModLine(mod m.Mod, res m.Resolution) string {
	switch {
	case mod.CheatOnly:
		return fmt.Sprintf("%s  %s", mod.CleanName, s.paint(styleCheat, "[cheat only]"))
	case !mod.Enabled:
		return fmt.Sprintf("%s  %s", mod.CleanName, s.paint(styleDisabled, "[disabled]"))
	case res.HasLabel(mod.Name, m.LabelConflict):
		return fmt.Sprintf("%s  %s", mod.CleanName, s.paint(styleConflict, "[conflicts]"))
	case res.HasLabel(mod.Name, m.LabelOverride):
		return fmt.Sprintf("%s  %s", mod.CleanName, s.paint(styleOverride, "[overrides]"))
	default:
		return fmt.Sprintf("%s  [no conflicts]", mod.CleanName)
	}
}

func (s *SimpleUI) treeFileLine(mod string, path m.RelPath, res m.Resolution) string {
	status := res.StatusOf(mod, path)

	switch {
	case len(status.Overrides) > 0:
		losers := make([]string, 0, len(status.Overrides))
		for _, loser := range status.Overrides {
			losers = append(losers, m.StripPrefix(loser))
		}

		return fmt.Sprintf("%s  %s", path, s.paint(styleOverride, "overrides: "+strings.Join(losers, ", ")))
	case status.OverriddenBy != "":
		return fmt.Sprintf("%s  %s", path, s.paint(styleConflict, "overridden by "+m.StripPrefix(status.OverriddenBy)))
	case status.Loaded:
		return fmt.Sprintf("%s  loaded", path)
	default:
		return fmt.Sprintf("%s  %s", path, s.paint(styleDisabled, "not loaded"))
	}
}

// DisplayCheats renders the cheat table for one mod.
func (s *SimpleUI) DisplayCheats(ctx context.Context, mod string, cheats []m.Cheat, sel m.CheatSelection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(cheats) == 0 {
		s.printf("No cheat definitions found for %q.\n", m.StripPrefix(mod))
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Cheat", "Enabled"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, cheat := range cheats {
		enabled := "no"
		if sel[cheat.Name] {
			enabled = s.paint(styleOverride, "yes")
		}

		table.Append([]string{cheat.Name, enabled})
	}

	table.Render()

	s.printf("\nCheats for %s:\n%s", m.StripPrefix(mod), buf.String())

	return nil
}

// DisplayEnabledDiff shows a unified diff of the enabled.txt change.
func (s *SimpleUI) DisplayEnabledDiff(ctx context.Context, path m.Path, before, after string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if before == after {
		s.printf("%s is already up to date.\n", path)
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(path),
		ToFile:   string(path) + " (new)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("render diff: %w", err)
	}

	s.printf("%s", diff)

	return nil
}

// Status prints a one-line message.
func (s *SimpleUI) Status(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf(format+"\n", args...)
}

// printf writes formatted output to the underlying cobra command's stdout.
func (s *SimpleUI) printf(format string, args ...any) {
	fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
