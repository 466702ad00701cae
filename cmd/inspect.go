package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"riverdreams.dev/pkg/riverdreams/internal/controller"
	"riverdreams.dev/pkg/riverdreams/internal/domain"
)

const (
	inspectOutputKey     = "inspect.output"
	defaultInspectOutput = "table"
)

var inspectOutputFlag string

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what the prompt collects and how it is laid out",
		Long: `Collect every segment of both prompts and print its name, presence, visible
width and text, followed by the measurement of the status row.`,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindInputFlags(cmd, columnsFlagName, exitCodeFlagName, elevatedFlagName, jobsFlagName)
			bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), inspectOutputKey)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := controller.ParseOutputFormat(viper.GetString(inspectOutputKey))
			if err != nil {
				return err
			}

			settings, err := collectorSettings()
			if err != nil {
				return err
			}

			return newPrompt(settings).Inspect(cmd.Context(), domain.InspectArgs{
				Inputs: promptInputs(),
				Format: format,
			})
		},
	}

	configureLeftFlags(cmd)
	configureRightFlags(cmd)
	cmd.Flags().StringVarP(&inspectOutputFlag, outputFlagName, "o", defaultInspectOutput, "output format: table or yaml")

	return cmd
}

func init() {
	viper.SetDefault(inspectOutputKey, defaultInspectOutput)
	rootCmd.AddCommand(inspectCmd)
}
