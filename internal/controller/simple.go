package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// SimpleUI implements UI on top of the cobra command output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPrompt paints line for shell and writes it at once.
func (s *SimpleUI) DisplayPrompt(ctx context.Context, line m.Line, shell Shell) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	painter, err := NewPainter(shell)
	if err != nil {
		return err
	}

	return s.write(painter.Paint(line))
}

// DisplayInspection prints the collected segments and the status row measure.
func (s *SimpleUI) DisplayInspection(ctx context.Context, inspection m.Inspection, format OutputFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(inspection)
		if err != nil {
			return fmt.Errorf("encode inspection: %w", err)
		}

		return s.write(string(out))
	case FormatTable, "":
		return s.write(renderInspection(inspection))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// DisplayScript writes a shell script verbatim.
func (s *SimpleUI) DisplayScript(ctx context.Context, script string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(script)
}

func (s *SimpleUI) write(text string) error {
	_, err := io.WriteString(s.cmd.OutOrStdout(), text)
	return err
}

func renderInspection(inspection m.Inspection) string {
	var out bytes.Buffer

	root := string(inspection.Root)
	if root == "" {
		root = "-"
	}

	fmt.Fprintf(&out, "working directory\t %s\n", inspection.WorkingDir)
	fmt.Fprintf(&out, "repository root\t %s\n", root)
	fmt.Fprintf(&out, "display\t\t %s\n\n", inspection.Display)

	segments := tablewriter.NewWriter(&out)
	segments.SetHeader([]string{"Segment", "Present", "Width", "Text"})
	segments.SetBorder(false)
	segments.SetCenterSeparator("")
	segments.SetAutoWrapText(false)
	segments.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, segment := range inspection.Segments {
		segments.Append([]string{
			string(segment.Name),
			strconv.FormatBool(segment.Present),
			strconv.Itoa(segment.Width),
			segment.Text,
		})
	}

	segments.Render()
	out.WriteString("\n")

	layout := tablewriter.NewWriter(&out)
	layout.SetHeader([]string{"Width", "Content", "Separators", "Decoration", "Fill"})
	layout.SetBorder(false)
	layout.SetCenterSeparator("")
	layout.Append([]string{
		strconv.Itoa(inspection.Layout.Width),
		strconv.Itoa(inspection.Layout.Content),
		strconv.Itoa(inspection.Layout.Separators),
		strconv.Itoa(inspection.Layout.Decoration),
		strconv.Itoa(inspection.Layout.Fill),
	})
	layout.Render()

	return out.String()
}
