package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// Painter turns laid out spans into text for a terminal or a shell.
type Painter interface {
	Paint(line m.Line) string
}

// NewPainter returns the painter for shell.
func NewPainter(shell Shell) (Painter, error) {
	switch shell {
	case ShellZsh, "":
		return ZshPainter{}, nil
	case ShellANSI:
		return NewANSIPainter(), nil
	case ShellPlain:
		return PlainPainter{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q", shell)
	}
}

// ZshPainter emits zsh prompt escapes. `%` in the text is doubled so zsh
// prints it literally.
type ZshPainter struct{}

// Paint implements Painter.
func (ZshPainter) Paint(line m.Line) string {
	var b strings.Builder

	for _, span := range line {
		text := strings.ReplaceAll(span.Text, "%", "%%")
		if span.Color == m.ColorNone {
			b.WriteString(text)
			continue
		}

		fmt.Fprintf(&b, "%%F{%d}%s%%f", span.Color.ANSI(), text)
	}

	return b.String()
}

// ANSIPainter emits raw ANSI color sequences.
type ANSIPainter struct {
	renderer *lipgloss.Renderer
}

// NewANSIPainter creates an ANSIPainter pinned to the 16 color profile, so the
// output does not depend on the terminal it was detected on.
func NewANSIPainter() *ANSIPainter {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.ANSI)

	return &ANSIPainter{renderer: renderer}
}

// Paint implements Painter.
func (p *ANSIPainter) Paint(line m.Line) string {
	var b strings.Builder

	for _, span := range line {
		if span.Color == m.ColorNone || span.Text == "" {
			b.WriteString(span.Text)
			continue
		}

		style := p.renderer.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(span.Color.ANSI())))
		b.WriteString(style.Render(span.Text))
	}

	return b.String()
}

// PlainPainter drops all colors.
type PlainPainter struct{}

// Paint implements Painter.
func (PlainPainter) Paint(line m.Line) string {
	return line.Text()
}
