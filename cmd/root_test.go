package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"riverdreams.dev/pkg/riverdreams/internal/domain"
	domainmocks "riverdreams.dev/pkg/riverdreams/internal/domain/mocks"
)

// withPrompt replaces the prompt factory for the duration of the test and
// records the settings it was built with.
func withPrompt(t *testing.T, prompt domain.Prompt) *domain.CollectorSettings {
	t.Helper()

	var settings domain.CollectorSettings

	original := newPrompt
	newPrompt = func(s domain.CollectorSettings) domain.Prompt {
		settings = s
		return prompt
	}

	t.Cleanup(func() { newPrompt = original })

	return &settings
}

func executeCmd(cmd *cobra.Command, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestBaseRootCmd(t *testing.T) {
	cmd := baseRootCmd()
	assert.Equal(t, "river-dreams", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	output, err := executeCmd(baseRootCmd())

	require.NoError(t, err)
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, `eval "$(river-dreams init)"`)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"prompt", "init", "inspect", "version"})
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup(logFileFlagName))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup(verboseFlagName))
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, gitAdapter)
	assert.NotNil(t, hardwareAdapter)
	assert.NotNil(t, networkAdapter)
	assert.NotNil(t, terminalAdapter)
	assert.NotNil(t, clock)
	assert.NotNil(t, newPrompt(domain.CollectorSettings{}))
}

func TestRootCmd_InitThroughRealPrompt(t *testing.T) {
	original := executablePath
	executablePath = func() (string, error) { return "/opt/bin/river-dreams", nil }
	t.Cleanup(func() { executablePath = original })

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"init"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "__river_dreams_bin='/opt/bin/river-dreams'")
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute should not exit when the command succeeds.
	Execute()
}

func TestExecute_WithPromptError(t *testing.T) {
	prompt := domainmocks.NewMockPrompt(t)
	prompt.EXPECT().Left(mock.Anything, mock.Anything).Return(fmt.Errorf("collect left prompt: %w", os.ErrNotExist))
	withPrompt(t, prompt)

	_, err := executeCmd(newPromptCmd(), "left")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use:           "test",
			SilenceErrors: true,
			SilenceUsage:  true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("write left prompt: %w", os.ErrClosed)
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), ":<>:: river-dreams (exit 1): write left prompt: file already closed\n")
	assert.Contains(t, string(output), " INFO: use -h or --help for help instructions.")
}
