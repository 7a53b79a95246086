package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show every mod's files and their fate in the overlay",
		Long: `List each mod followed by its files, marking per file whether it is
loaded, overrides another mod or is overridden by one.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Tree(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
