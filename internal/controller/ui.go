// Package controller provides the output adapters that write rendered prompts.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// Shell names the escape dialect a prompt is painted with.
type Shell string

// Supported shells.
const (
	ShellZsh   Shell = "zsh"
	ShellANSI  Shell = "ansi"
	ShellPlain Shell = "plain"
)

// ParseShell validates a shell name. An empty name means zsh.
func ParseShell(value string) (Shell, error) {
	switch shell := Shell(strings.ToLower(strings.TrimSpace(value))); shell {
	case ShellZsh, ShellANSI, ShellPlain:
		return shell, nil
	case "":
		return ShellZsh, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected zsh, ansi or plain)", value)
	}
}

// OutputFormat selects how an inspection is printed.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates an output format name. An empty name means table.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatTable, FormatYAML:
		return format, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table or yaml)", value)
	}
}

// UI defines how rendered prompts and diagnostics reach the user.
type UI interface {
	// DisplayPrompt paints line for shell and writes it in a single write.
	DisplayPrompt(ctx context.Context, line m.Line, shell Shell) error
	DisplayInspection(ctx context.Context, inspection m.Inspection, format OutputFormat) error
	DisplayScript(ctx context.Context, script string) error
}
