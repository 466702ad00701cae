package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"riverdreams.dev/pkg/riverdreams/internal/controller"
	"riverdreams.dev/pkg/riverdreams/internal/domain"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

var columnsFlag int
var exitCodeFlag int
var elevatedFlag bool
var jobsFlag int
var shellFlag string

// effectiveUID reports the effective user id, -1 where there is none.
var effectiveUID = os.Geteuid

// promptCmd represents the prompt command.
var promptCmd = newPromptCmd()

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the left or right prompt",
		Long: `Render one side of the prompt on stdout in a single write.

The shell hook printed by "river-dreams init" calls these commands before
every prompt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&shellFlag, shellFlagName, viper.GetString(shellKey), "escape dialect of the output: zsh, ansi or plain")

	cmd.AddCommand(newPromptLeftCmd(), newPromptRightCmd())

	return cmd
}

func newPromptLeftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "left",
		Aliases: []string{"l"},
		Short:   "Render the left prompt",
		Args:    cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindInputFlags(cmd, columnsFlagName, exitCodeFlagName, elevatedFlagName)
			bindFlagToConfig(cmd.Flags().Lookup(shellFlagName), shellKey)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt, shell, err := promptForShell()
			if err != nil {
				return err
			}

			return prompt.Left(cmd.Context(), domain.PromptArgs{Inputs: promptInputs(), Shell: shell})
		},
	}

	configureLeftFlags(cmd)

	return cmd
}

func newPromptRightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "right",
		Aliases: []string{"r"},
		Short:   "Render the right prompt",
		Args:    cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindInputFlags(cmd, jobsFlagName)
			bindFlagToConfig(cmd.Flags().Lookup(shellFlagName), shellKey)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt, shell, err := promptForShell()
			if err != nil {
				return err
			}

			return prompt.Right(cmd.Context(), domain.PromptArgs{Inputs: promptInputs(), Shell: shell})
		},
	}

	configureRightFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func configureLeftFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&columnsFlag, columnsFlagName, viper.GetInt(columnsKey), "terminal width in columns (queried from the terminal when 0)")
	cmd.Flags().IntVar(&exitCodeFlag, exitCodeFlagName, viper.GetInt(exitCodeKey), "exit code of the previous command")
	cmd.Flags().BoolVar(&elevatedFlag, elevatedFlagName, viper.GetBool(elevatedKey), "the shell runs with administrator privileges")
}

func configureRightFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&jobsFlag, jobsFlagName, viper.GetInt(jobsKey), "number of background jobs of the shell")
}

// bindInputFlags binds flags to their keys for the running command only, as
// several commands share the same keys.
func bindInputFlags(cmd *cobra.Command, names ...string) {
	keys := map[string]string{
		columnsFlagName:  columnsKey,
		exitCodeFlagName: exitCodeKey,
		elevatedFlagName: elevatedKey,
		jobsFlagName:     jobsKey,
	}

	for _, name := range names {
		bindFlagToConfig(cmd.Flags().Lookup(name), keys[name])
	}
}

func promptForShell() (domain.Prompt, controller.Shell, error) {
	shell, err := controller.ParseShell(viper.GetString(shellKey))
	if err != nil {
		return nil, "", err
	}

	settings, err := collectorSettings()
	if err != nil {
		return nil, "", err
	}

	return newPrompt(settings), shell, nil
}

func collectorSettings() (domain.CollectorSettings, error) {
	style, err := domain.ParsePathStyle(viper.GetString(pathStyleKey))
	if err != nil {
		return domain.CollectorSettings{}, err
	}

	return domain.CollectorSettings{
		PathStyle:  style,
		CheckDirty: viper.GetBool(gitDirtyKey),
	}, nil
}

// promptInputs gathers the values the shell and the environment supply.
func promptInputs() m.Inputs {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("no home directory", "error", err)
	}

	return m.Inputs{
		Columns:    viper.GetInt(columnsKey),
		ExitCode:   viper.GetInt(exitCodeKey),
		Elevated:   viper.GetBool(elevatedKey) || effectiveUID() == 0,
		Jobs:       viper.GetInt(jobsKey),
		VirtualEnv: os.Getenv("VIRTUAL_ENV"),
		Home:       m.Path(home),
	}
}
