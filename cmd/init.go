package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"riverdreams.dev/pkg/riverdreams/internal/domain"
)

// executablePath resolves the binary the shell hook should call.
var executablePath = os.Executable

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the zsh hook script",
		Long: `Print the script that installs the prompts in zsh. Add this line to your
~/.zshrc:

  eval "$(river-dreams init)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			binary, err := executablePath()
			if err != nil {
				slog.Debug("can not resolve the executable, relying on PATH", "error", err)
				binary = programName
			}

			return newPrompt(domain.CollectorSettings{}).Init(cmd.Context(), domain.InitArgs{Binary: binary})
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
