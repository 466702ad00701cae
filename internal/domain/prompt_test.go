package domain_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	adaptermocks "riverdreams.dev/pkg/riverdreams/internal/adapter/mocks"
	"riverdreams.dev/pkg/riverdreams/internal/controller"
	controllermocks "riverdreams.dev/pkg/riverdreams/internal/controller/mocks"
	"riverdreams.dev/pkg/riverdreams/internal/domain"
	domainmocks "riverdreams.dev/pkg/riverdreams/internal/domain/mocks"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

func sampleLeft() domain.LeftSegments {
	return domain.LeftSegments{
		WorkingDir: "/home/u/proj",
		Root:       "/home/u/proj",
		Display:    "/h/u/proj",
		Status: []m.Segment{
			m.NewSegment(m.SegmentIP, m.Plain("x")),
			m.Absent(m.SegmentBattery),
		},
		CommandLine: []m.Segment{
			m.NewSegment(m.SegmentExitCode, m.Plain("{0}⤐ ")),
		},
	}
}

// lineWidth matches a rendered line whose visible width is want.
func lineWidth(want int) interface{} {
	return mock.MatchedBy(func(line m.Line) bool {
		return domain.VisibleWidth(line.Text()) == want
	})
}

func TestPrompt_Left(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		inputs   m.Inputs
		columns  int
		termErr  error
		queried  bool
		rendered int
	}{
		{name: "explicit columns", inputs: m.Inputs{Columns: 30}, rendered: 30 + 30 + 6},
		{name: "terminal columns", columns: 40, queried: true, rendered: 40 + 40 + 6},
		{name: "default columns", termErr: adapter.ErrNoTerminal, queried: true, rendered: 80 + 80 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := domainmocks.NewMockCollector(t)
			terminal := adaptermocks.NewMockTerminalAdapter(t)
			ui := controllermocks.NewMockUI(t)

			collector.EXPECT().CollectLeft(mock.Anything, tt.inputs).Return(sampleLeft(), nil)

			if tt.queried {
				terminal.EXPECT().Columns(mock.Anything).Return(tt.columns, tt.termErr)
			}

			ui.EXPECT().DisplayPrompt(mock.Anything, lineWidth(tt.rendered), controller.ShellZsh).Return(nil)

			err := domain.NewPrompt(collector, terminal, ui).Left(ctx, domain.PromptArgs{Inputs: tt.inputs, Shell: controller.ShellZsh})
			require.NoError(t, err)
		})
	}
}

func TestPrompt_LeftRowOrder(t *testing.T) {
	collector := domainmocks.NewMockCollector(t)
	ui := controllermocks.NewMockUI(t)

	collector.EXPECT().CollectLeft(mock.Anything, mock.Anything).Return(sampleLeft(), nil)

	var rendered m.Line

	ui.EXPECT().DisplayPrompt(mock.Anything, mock.Anything, controller.ShellPlain).
		Run(func(_ context.Context, line m.Line, _ controller.Shell) { rendered = line }).
		Return(nil)

	err := domain.NewPrompt(collector, adaptermocks.NewMockTerminalAdapter(t), ui).
		Left(context.Background(), domain.PromptArgs{Inputs: m.Inputs{Columns: 12}, Shell: controller.ShellPlain})
	require.NoError(t, err)

	assert.Equal(t, "≥v≥v≥v≥v≥v≥v"+":«(x)»:-=-=-"+"{0}⤐  ", rendered.Text())
	assert.False(t, strings.Contains(rendered.Text(), "\n"))
}

func TestPrompt_LeftCollectError(t *testing.T) {
	collector := domainmocks.NewMockCollector(t)
	collector.EXPECT().CollectLeft(mock.Anything, mock.Anything).Return(domain.LeftSegments{}, adapter.ErrNoWorkingDirectory)

	err := domain.NewPrompt(collector, adaptermocks.NewMockTerminalAdapter(t), controllermocks.NewMockUI(t)).
		Left(context.Background(), domain.PromptArgs{})
	require.ErrorIs(t, err, adapter.ErrNoWorkingDirectory)
}

func TestPrompt_Right(t *testing.T) {
	collector := domainmocks.NewMockCollector(t)
	ui := controllermocks.NewMockUI(t)

	collector.EXPECT().CollectRight(mock.Anything, m.Inputs{Jobs: 3}).Return([]m.Segment{
		m.Absent(m.SegmentEntries),
		m.NewSegment(m.SegmentJobs, m.Plain(" "), m.Colored("J", m.ColorMagenta), m.Plain(" 3")),
	}, nil)

	ui.EXPECT().DisplayPrompt(mock.Anything, mock.MatchedBy(func(line m.Line) bool {
		return line.Text() == " J 3"
	}), controller.ShellANSI).Return(nil)

	err := domain.NewPrompt(collector, adaptermocks.NewMockTerminalAdapter(t), ui).
		Right(context.Background(), domain.PromptArgs{Inputs: m.Inputs{Jobs: 3}, Shell: controller.ShellANSI})
	require.NoError(t, err)
}

func TestPrompt_RightDisplayError(t *testing.T) {
	collector := domainmocks.NewMockCollector(t)
	ui := controllermocks.NewMockUI(t)

	collector.EXPECT().CollectRight(mock.Anything, mock.Anything).Return(nil, nil)
	ui.EXPECT().DisplayPrompt(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broken pipe"))

	err := domain.NewPrompt(collector, adaptermocks.NewMockTerminalAdapter(t), ui).
		Right(context.Background(), domain.PromptArgs{})
	require.ErrorContains(t, err, "broken pipe")
}

func TestPrompt_Inspect(t *testing.T) {
	collector := domainmocks.NewMockCollector(t)
	ui := controllermocks.NewMockUI(t)
	inputs := m.Inputs{Columns: 20}

	collector.EXPECT().CollectLeft(mock.Anything, inputs).Return(sampleLeft(), nil)
	collector.EXPECT().CollectRight(mock.Anything, inputs).Return([]m.Segment{m.Absent(m.SegmentJobs)}, nil)

	var got m.Inspection

	ui.EXPECT().DisplayInspection(mock.Anything, mock.Anything, controller.FormatYAML).
		Run(func(_ context.Context, inspection m.Inspection, _ controller.OutputFormat) { got = inspection }).
		Return(nil)

	err := domain.NewPrompt(collector, adaptermocks.NewMockTerminalAdapter(t), ui).
		Inspect(context.Background(), domain.InspectArgs{Inputs: inputs, Format: controller.FormatYAML})
	require.NoError(t, err)

	assert.Equal(t, m.Path("/home/u/proj"), got.WorkingDir)
	assert.Equal(t, "/h/u/proj", got.Display)
	assert.Equal(t, []m.SegmentReport{
		{Name: m.SegmentIP, Present: true, Width: 1, Text: "x"},
		{Name: m.SegmentBattery},
		{Name: m.SegmentExitCode, Present: true, Width: 5, Text: "{0}⤐ "},
		{Name: m.SegmentJobs},
	}, got.Segments)
	assert.Equal(t, m.Measure{Width: 20, Content: 1, Decoration: 6, Fill: 13}, got.Layout)
}

func TestPrompt_Init(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayScript(mock.Anything, mock.MatchedBy(func(script string) bool {
		return strings.Contains(script, "__river_dreams_bin='/bin/rd'")
	})).Return(nil)

	err := domain.NewPrompt(domainmocks.NewMockCollector(t), adaptermocks.NewMockTerminalAdapter(t), ui).
		Init(context.Background(), domain.InitArgs{Binary: "/bin/rd"})
	require.NoError(t, err)
}
