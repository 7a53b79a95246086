package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Render the merged configuration (defaults, dreamsort.yaml, environment
and flags) as YAML.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}

			cmd.Print(string(rendered))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
