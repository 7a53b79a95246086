package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <mod>",
		Short: "Delete a mod directory from the mods root",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Remove(context.Background(), domain.RemoveArgs{
				Root: modsRoot(),
				Mod:  args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
