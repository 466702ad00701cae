// Package cmd provides the root command and CLI setup for river-dreams.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	"riverdreams.dev/pkg/riverdreams/internal/controller"
	"riverdreams.dev/pkg/riverdreams/internal/domain"
)

var fsAdapter adapter.FSAdapter
var gitAdapter adapter.GitAdapter
var hardwareAdapter adapter.HardwareAdapter
var networkAdapter adapter.NetworkAdapter
var terminalAdapter adapter.TerminalAdapter
var clock adapter.Clock
var ui controller.UI

// newPrompt builds the prompt renderer once the settings of the invocation
// are known.
var newPrompt = func(settings domain.CollectorSettings) domain.Prompt {
	collector := domain.NewCollector(fsAdapter, gitAdapter, hardwareAdapter, networkAdapter, clock, settings)
	return domain.NewPrompt(collector, terminalAdapter, ui)
}

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	hardwareAdapter = adapter.NewLocalHardwareAdapter()
	networkAdapter = adapter.NewLocalNetworkAdapter()
	terminalAdapter = adapter.NewLocalTerminalAdapter()
	clock = adapter.NewLocalClock()
}

const rootLongDescription = `River Dreams renders a two sided shell prompt: a left prompt with the
network address, disk, battery, date and time above the working directory
and repository state, and a right prompt with directory entry counts and
background jobs.

Load it in zsh with:

  eval "$(river-dreams init)"`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "Shell prompt renderer",
		Long:          rootLongDescription,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "write debug logs to this file (disabled when empty)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
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
		controller.NewErrorWriter(os.Stderr, programName, controller.IsTTY(os.Stderr)).Write(err)
		os.Exit(1)
	}
}
