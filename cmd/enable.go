package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
)

// enableCmd represents the enable command.
var enableCmd = newEnableCmd()

// disableCmd represents the disable command.
var disableCmd = newDisableCmd()

// disableAllCmd represents the disable-all command.
var disableAllCmd = newDisableAllCmd()

func newEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <mod>",
		Short: "Enable a mod and apply the load order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SetEnabled(context.Background(), domain.ToggleArgs{
				Root:    modsRoot(),
				Mod:     args[0],
				Enabled: true,
			})
		},
	}
}

func newDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <mod>",
		Short: "Disable a mod and apply the load order",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SetEnabled(context.Background(), domain.ToggleArgs{
				Root:    modsRoot(),
				Mod:     args[0],
				Enabled: false,
			})
		},
	}
}

func newDisableAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable-all",
		Short: "Disable every mod and apply the load order",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.DisableAll(context.Background(), domain.ScanArgs{Root: modsRoot()})
		},
	}
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(disableAllCmd)
}
