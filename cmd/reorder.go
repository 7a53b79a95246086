package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// reorderCmd represents the reorder command.
var reorderCmd = newReorderCmd()

func newReorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <mod> <rank>",
		Short: "Move a mod to a position in the load order",
		Long: `Move the mod to the given 1-based rank and apply the resulting order.
Rank 1 is the top of the list and wins every conflict it is part of.
Out-of-range ranks clamp to the nearest end.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			rank, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rank %q: %w", args[1], err)
			}

			return workflow.Reorder(context.Background(), domain.ReorderArgs{
				Root: modsRoot(),
				Mod:  args[0],
				Rank: rank,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
