package model

import "strings"

// Color is one of the terminal palette colors the prompt paints with.
type Color int

const (
	// ColorNone leaves the text in the terminal's default foreground.
	ColorNone Color = iota
	// ColorRed refers to the dark red color (ANSI 1).
	ColorRed
	// ColorGreen refers to the dark green color (ANSI 2).
	ColorGreen
	// ColorYellow refers to the dark yellow color (ANSI 3).
	ColorYellow
	// ColorBlue refers to the dark blue color (ANSI 4).
	ColorBlue
	// ColorMagenta refers to the dark magenta color (ANSI 5).
	ColorMagenta
	// ColorCyan refers to the dark cyan color (ANSI 6).
	ColorCyan
)

// ANSI returns the palette index of the color, 0 for ColorNone.
func (c Color) ANSI() int {
	if c < ColorNone || c > ColorCyan {
		return 0
	}

	return int(c)
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	default:
		return "none"
	}
}

// Span is a run of visible text painted with a single color.
type Span struct {
	Text  string
	Color Color
}

// Plain builds an uncolored span.
func Plain(text string) Span {
	return Span{Text: text}
}

// Colored builds a span painted with c.
func Colored(text string, c Color) Span {
	return Span{Text: text, Color: c}
}

// SegmentName identifies a prompt segment.
type SegmentName string

// Segment names in canonical render order.
const (
	SegmentIP         SegmentName = "ip"
	SegmentDisk       SegmentName = "disk"
	SegmentBattery    SegmentName = "battery"
	SegmentCalendar   SegmentName = "calendar"
	SegmentClock      SegmentName = "clock"
	SegmentElevated   SegmentName = "elevated"
	SegmentExitCode   SegmentName = "exit-code"
	SegmentVirtualEnv SegmentName = "venv"
	SegmentPath       SegmentName = "path"
	SegmentGit        SegmentName = "git"
	SegmentOwnership  SegmentName = "ownership"
	SegmentEntries    SegmentName = "entries"
	SegmentJobs       SegmentName = "jobs"
)

// Segment is one self-contained piece of rendered status text.
//
// Absent segments are skipped by the layout together with their separators.
type Segment struct {
	Name    SegmentName
	Spans   []Span
	Present bool
}

// NewSegment builds a present segment out of spans.
func NewSegment(name SegmentName, spans ...Span) Segment {
	return Segment{Name: name, Spans: spans, Present: true}
}

// Absent builds a segment that will not be rendered.
func Absent(name SegmentName) Segment {
	return Segment{Name: name}
}

// Text returns the visible text of the segment without any styling.
func (s Segment) Text() string {
	var b strings.Builder
	for _, span := range s.Spans {
		b.WriteString(span.Text)
	}

	return b.String()
}

// Line is a fully laid out prompt row, ready to be painted.
type Line []Span

// Text returns the visible text of the line without any styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}

	return b.String()
}
