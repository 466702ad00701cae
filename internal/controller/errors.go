package controller

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ErrorWriter prints fatal errors in the program's banner format:
//
//	:<>:: river-dreams (exit 1): <message>
//	 INFO: use -h or --help for help instructions.
type ErrorWriter struct {
	out      io.Writer
	program  string
	renderer *lipgloss.Renderer
	styled   bool
}

// NewErrorWriter creates an ErrorWriter. Styles are applied only when styled
// is set.
func NewErrorWriter(out io.Writer, program string, styled bool) *ErrorWriter {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(termenv.ANSI)

	return &ErrorWriter{out: out, program: program, renderer: renderer, styled: styled}
}

// Write prints err.
func (w *ErrorWriter) Write(err error) {
	yellow := w.style("3", true)
	red := w.style("1", true)
	magenta := w.style("5", true)
	cyan := w.style("6", true)
	option := w.style("6", false)

	_, _ = fmt.Fprintf(w.out, "%s%s%s %s %s%s %v\n%s use %s or %s for help instructions.\n",
		yellow(":"), red("<>"), yellow("::"),
		magenta(w.program), yellow("(exit 1)"), magenta(":"),
		err,
		cyan(" INFO:"), option("-h"), option("--help"),
	)
}

func (w *ErrorWriter) style(color string, bold bool) func(string) string {
	if !w.styled {
		return func(text string) string { return text }
	}

	style := w.renderer.NewStyle().Foreground(lipgloss.Color(color)).Bold(bold)

	return func(text string) string { return style.Render(text) }
}
