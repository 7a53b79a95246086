package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scan",
		Aliases: []string{"status"},
		Short:   "Show the mod load order and conflict summary",
		Long: `Scan the mods root, resolve the overlay for the enabled mods and show
each mod with its rank, enabled state and conflict classification.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Scan(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
