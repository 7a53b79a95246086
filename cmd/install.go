package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"dreamsort.dev/pkg/dreamsort/internal/domain"
	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

var installNameFlag string

// installCmd represents the install command.
var installCmd = newInstallCmd()

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <dir>",
		Short: "Copy a mod directory into the mods root",
		Long: `Copy an unpacked mod directory into the mods root. The new mod is
numbered into the load order on the next apply. Archives are not
extracted, point this at an already unpacked folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Install(context.Background(), domain.InstallArgs{
				Root:   modsRoot(),
				Source: m.Path(args[0]),
				Name:   installNameFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&installNameFlag, "name", "n", "", "directory name to install as (default: source basename)")

	return cmd
}

func init() {
	rootCmd.AddCommand(installCmd)
}
