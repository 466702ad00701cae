package domain

import (
	"github.com/mattn/go-runewidth"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// widthCondition measures visible columns. Ambiguous glyphs, Nerd Font icons
// included, are one column wide as in non CJK terminals.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// VisibleWidth returns the number of terminal columns text occupies.
func VisibleWidth(text string) int {
	return widthCondition.StringWidth(text)
}

func spansWidth(spans []m.Span) int {
	width := 0
	for _, span := range spans {
		width += VisibleWidth(span.Text)
	}

	return width
}

// Pattern is a sequence of glyphs repeated cyclically to fill a row.
type Pattern []m.Span

// Row describes one prompt row: Open, the Left segments joined by Separator,
// Close, the fill, then the Right segments joined by Separator.
type Row struct {
	Open      []m.Span
	Left      []m.Segment
	Separator m.Span
	Close     []m.Span
	Fill      Pattern
	Right     []m.Segment
}

// MeasureRow computes how row fits in width columns without composing it.
// The fill is clamped to zero when the content overflows.
func MeasureRow(row Row, width int) m.Measure {
	measure := m.Measure{Width: width}

	sepWidth := VisibleWidth(row.Separator.Text)

	for _, segments := range [][]m.Segment{row.Left, row.Right} {
		present := 0

		for _, segment := range segments {
			if !segment.Present {
				continue
			}

			measure.Content += spansWidth(segment.Spans)
			present++
		}

		if present > 1 {
			measure.Separators += (present - 1) * sepWidth
		}
	}

	measure.Decoration = spansWidth(row.Open) + spansWidth(row.Close)

	if len(row.Fill) > 0 {
		measure.Fill = max(0, width-measure.Content-measure.Separators-measure.Decoration)
	}

	return measure
}

// Compose lays out row in width columns in a single pass.
func Compose(row Row, width int) (m.Line, m.Measure) {
	measure := MeasureRow(row, width)

	line := make(m.Line, 0, len(row.Open)+len(row.Close)+2*(len(row.Left)+len(row.Right))+measure.Fill)
	line = append(line, row.Open...)
	line = appendSegments(line, row.Left, row.Separator)
	line = append(line, row.Close...)
	line = appendFill(line, row.Fill, measure.Fill)
	line = appendSegments(line, row.Right, row.Separator)

	return line, measure
}

func appendSegments(line m.Line, segments []m.Segment, separator m.Span) m.Line {
	first := true

	for _, segment := range segments {
		if !segment.Present {
			continue
		}

		if !first && separator.Text != "" {
			line = append(line, separator)
		}

		line = append(line, segment.Spans...)
		first = false
	}

	return line
}

// appendFill repeats pattern until columns are used, never exceeding them.
func appendFill(line m.Line, pattern Pattern, columns int) m.Line {
	if len(pattern) == 0 {
		return line
	}

	for i, used := 0, 0; used < columns; i++ {
		glyph := pattern[i%len(pattern)]

		w := VisibleWidth(glyph.Text)
		if w == 0 || used+w > columns {
			break
		}

		line = append(line, glyph)
		used += w
	}

	return line
}
