package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Normalize folder names and rewrite the emulator manifest",
		Long: `Rename every mod folder to match its load order (01_Mod, 02_Mod, ~Off)
and rewrite mods.json so the emulator sees the same order. Renames run
in two phases so swapping two mods never collides.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Apply(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
