package domain

import (
	"context"
	"fmt"
	"log/slog"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	"riverdreams.dev/pkg/riverdreams/internal/controller"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// DefaultColumns is the terminal width assumed when no source reports one.
const DefaultColumns = 80

// PromptArgs contains the arguments for rendering a prompt.
type PromptArgs struct {
	Inputs m.Inputs
	Shell  controller.Shell
}

// InspectArgs contains the arguments for inspecting a left prompt render.
type InspectArgs struct {
	Inputs m.Inputs
	Format controller.OutputFormat
}

// InitArgs contains the arguments for printing the shell hook script.
type InitArgs struct {
	// Binary is the command the shell runs to render the prompts.
	Binary string
}

// Prompt renders the prompts and writes them through the UI.
type Prompt interface {
	Left(ctx context.Context, args PromptArgs) error
	Right(ctx context.Context, args PromptArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	Init(ctx context.Context, args InitArgs) error
}

type prompt struct {
	Collector
	adapter.TerminalAdapter
	ui controller.UI
}

// NewPrompt creates a Prompt with the provided dependencies.
func NewPrompt(collector Collector, terminal adapter.TerminalAdapter, ui controller.UI) Prompt {
	return &prompt{
		Collector:       collector,
		TerminalAdapter: terminal,
		ui:              ui,
	}
}

func (p *prompt) Left(ctx context.Context, args PromptArgs) error {
	segments, err := p.CollectLeft(ctx, args.Inputs)
	if err != nil {
		return fmt.Errorf("collect left prompt: %w", err)
	}

	line, _ := LeftLine(segments, p.columns(ctx, args.Inputs))

	if err := p.ui.DisplayPrompt(ctx, line, args.Shell); err != nil {
		return fmt.Errorf("write left prompt: %w", err)
	}

	return nil
}

func (p *prompt) Right(ctx context.Context, args PromptArgs) error {
	segments, err := p.CollectRight(ctx, args.Inputs)
	if err != nil {
		return fmt.Errorf("collect right prompt: %w", err)
	}

	line, _ := Compose(Row{Left: segments}, 0)

	if err := p.ui.DisplayPrompt(ctx, line, args.Shell); err != nil {
		return fmt.Errorf("write right prompt: %w", err)
	}

	return nil
}

func (p *prompt) Inspect(ctx context.Context, args InspectArgs) error {
	left, err := p.CollectLeft(ctx, args.Inputs)
	if err != nil {
		return fmt.Errorf("collect left prompt: %w", err)
	}

	right, err := p.CollectRight(ctx, args.Inputs)
	if err != nil {
		return fmt.Errorf("collect right prompt: %w", err)
	}

	_, measure := LeftLine(left, p.columns(ctx, args.Inputs))

	segments := append(left.All(), right...)
	reports := make([]m.SegmentReport, 0, len(segments))

	for _, segment := range segments {
		reports = append(reports, m.SegmentReport{
			Name:    segment.Name,
			Present: segment.Present,
			Width:   spansWidth(segment.Spans),
			Text:    segment.Text(),
		})
	}

	inspection := m.Inspection{
		WorkingDir: left.WorkingDir,
		Root:       left.Root,
		Display:    left.Display,
		Segments:   reports,
		Layout:     measure,
	}

	if err := p.ui.DisplayInspection(ctx, inspection, args.Format); err != nil {
		return fmt.Errorf("write inspection: %w", err)
	}

	return nil
}

func (p *prompt) Init(ctx context.Context, args InitArgs) error {
	if err := p.ui.DisplayScript(ctx, InitScript(args.Binary)); err != nil {
		return fmt.Errorf("write init script: %w", err)
	}

	return nil
}

func (p *prompt) columns(ctx context.Context, inputs m.Inputs) int {
	if inputs.Columns > 0 {
		return inputs.Columns
	}

	columns, err := p.Columns(ctx)
	if err != nil {
		slog.Debug("using default terminal width", "columns", DefaultColumns, "error", err)
		return DefaultColumns
	}

	return columns
}

// LeftLine lays out the three rows of the left prompt. The rows are not
// separated by newlines: the first two fill the terminal width and wrap. The
// returned measure is the status row's.
func LeftLine(segments LeftSegments, width int) (m.Line, m.Measure) {
	top, _ := Compose(topRow(), width)
	status, measure := Compose(statusRow(segments.Status), width)
	command, _ := Compose(commandLineRow(segments.CommandLine), width)

	line := make(m.Line, 0, len(top)+len(status)+len(command))
	line = append(line, top...)
	line = append(line, status...)
	line = append(line, command...)

	return line, measure
}

func topRow() Row {
	return Row{Fill: Pattern{m.Colored("≥", m.ColorYellow), m.Colored("v", m.ColorRed)}}
}

func statusRow(segments []m.Segment) Row {
	return Row{
		Open:      []m.Span{m.Colored(statusOpen, m.ColorYellow)},
		Left:      segments,
		Separator: m.Plain(statusSeparator),
		Close:     []m.Span{m.Colored(statusClose, m.ColorYellow)},
		Fill:      Pattern{m.Colored("-", m.ColorRed), m.Colored("=", m.ColorYellow)},
	}
}

func commandLineRow(segments []m.Segment) Row {
	return Row{
		Left:  segments,
		Close: []m.Span{m.Plain(" ")},
	}
}
