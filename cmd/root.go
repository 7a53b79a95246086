// Package cmd provides the root command and CLI setup for dreamsort.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dreamsort.dev/pkg/dreamsort/internal/adapter"
	"dreamsort.dev/pkg/dreamsort/internal/controller"
	"dreamsort.dev/pkg/dreamsort/internal/domain"
	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

var modFSAdapter adapter.ModFSAdapter
var manifestStore adapter.ManifestStore
var cheatStore adapter.CheatStore
var workflow domain.Workflow
var ui controller.UI

// modsRootFlag is a root-level flag shared by every command that reads the
// mods directory.
var modsRootFlag string

// noColorFlag disables ANSI colors in table and tree output.
var noColorFlag bool

// plainFlag disables the interactive pager even on a terminal.
var plainFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The production root re-wires the UI
	// once flags are parsed; tests build fresh commands and swap workflow.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	modFSAdapter = adapter.NewLocalModFSAdapter()
	manifestStore = adapter.NewLocalManifestStore()
	cheatStore = adapter.NewLocalCheatStore()
	workflow = domain.NewWorkflow(
		modFSAdapter,
		manifestStore,
		cheatStore,
		ui,
	)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
		wireUI()
	}
}

// wireUI rebuilds the UI and workflow from the effective flag values.
func wireUI() {
	interactive := controller.IsTTY(os.Stdout) && !viper.GetBool(plainConfigKey)
	color := interactive && !viper.GetBool(noColorConfigKey)

	simple := controller.NewSimpleUI(rootCmd, color)
	if interactive {
		ui = controller.NewTUI(os.Stdout, simple)
	} else {
		ui = simple
	}

	workflow = domain.NewWorkflow(modFSAdapter, manifestStore, cheatStore, ui)
}

const rootLongDescription = `Dreamsort manages Ryujinx mod folders: it sorts mods into an explicit
load order, resolves which mod wins each contested file, and keeps the
emulator's mods.json and cheat selection in sync with the folder layout.

Mod directories are ordered by numeric prefix (01_Mod loads before
02_Mod) and the first mod to claim a file wins it. Disabled mods carry a
~ prefix and are ignored by the emulator.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dreamsort",
		Short: "Ryujinx mod load order and conflict manager",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&modsRootFlag, rootFlagName, "r",
			viper.GetString(rootConfigKey),
			"mods root directory (mods/contents/<title id>)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().BoolVar(&noColorFlag, noColorFlagName, viper.GetBool(noColorConfigKey), "disable colored output")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noColorFlagName), noColorConfigKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "disable the interactive pager")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// modsRoot resolves the effective mods root for the current invocation.
func modsRoot() m.Path {
	return m.Path(viper.GetString(rootConfigKey))
}
