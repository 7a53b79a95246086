package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

var cheatsDisableAllFlag bool

// cheatsCmd represents the cheats command group.
var cheatsCmd = newCheatsCmd()

func newCheatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheats",
		Short: "Inspect and toggle cheat definitions",
		Long: `Cheat definitions live in each mod's cheats folder as [Name] blocks in
.txt files. The selection is stored in the shared cheats folder's
enabled.txt, one build id line per enabled cheat.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCheatsListCmd())
	cmd.AddCommand(newCheatsEnableCmd())
	cmd.AddCommand(newCheatsDisableCmd())
	cmd.AddCommand(newCheatsPreviewCmd())

	return cmd
}

func newCheatsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <mod>",
		Short: "List the cheats a mod ships and their enabled state",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.CheatList(context.Background(), domain.CheatListArgs{
				Root: modsRoot(),
				Mod:  args[0],
			})
		},
	}
}

func newCheatsEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <cheat>...",
		Short: "Enable cheats by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.CheatSet(context.Background(), domain.CheatSetArgs{
				Root:    modsRoot(),
				Names:   args,
				Enabled: true,
			})
		},
	}
}

func newCheatsDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable [cheat]...",
		Short: "Disable cheats by name, or all of them",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cheatsDisableAllFlag && len(args) == 0 {
				return cmd.Help()
			}

			return workflow.CheatSet(context.Background(), domain.CheatSetArgs{
				Root:  modsRoot(),
				Names: args,
				Clear: cheatsDisableAllFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&cheatsDisableAllFlag, "all", false, "disable every cheat")

	return cmd
}

func newCheatsPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show the current enabled.txt content",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.CheatPreview(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(cheatsCmd)
}
