// Package controller renders scan results, conflict reports and cheat
// listings. Implementations can use different output methods (plain text,
// TUI).
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// UI is the display surface the workflow pushes derived state through.
type UI interface {
	// DisplayMods renders the load order table with per-mod classification.
	DisplayMods(ctx context.Context, scan m.ScanResult, res m.Resolution) error

	// DisplayConflicts renders the per-path conflict report.
	DisplayConflicts(ctx context.Context, scan m.ScanResult, res m.Resolution) error

	// DisplayTree renders every mod with its files and per-file status.
	DisplayTree(ctx context.Context, scan m.ScanResult, res m.Resolution) error

	// DisplayCheats renders the cheats shipped by a mod and their enabled
	// state.
	DisplayCheats(ctx context.Context, mod string, cheats []m.Cheat, sel m.CheatSelection) error

	// DisplayEnabledDiff shows how a cheat operation will change
	// enabled.txt.
	DisplayEnabledDiff(ctx context.Context, path m.Path, before, after string) error

	// Status prints a one-line progress or result message.
	Status(ctx context.Context, format string, args ...any)
}

// NewUI returns the UI for the command: paginated output on a terminal,
// plain output everywhere else.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	simple := NewSimpleUI(cmd, interactive)
	if interactive {
		return NewTUI(os.Stdout, simple)
	}

	return simple
}

// IsTTY reports whether the file is attached to a terminal, used to decide
// between plain output and the interactive TUI.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
