package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// conflictsCmd represents the conflicts command.
var conflictsCmd = newConflictsCmd()

func newConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List contested file paths and their winners",
		Long: `Show every file path claimed by more than one enabled mod, the mod
that wins it and the mods it overrides.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Conflicts(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}
