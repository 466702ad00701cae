package adapter

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when no source can report the terminal width.
var ErrNoTerminal = errors.New("can not retrieve the terminal dimensions")

// TerminalAdapter queries the terminal the prompt is drawn on.
type TerminalAdapter interface {
	// Columns returns the terminal width in columns.
	Columns(ctx context.Context) (int, error)
}

// LocalTerminalAdapter asks the terminal driver, then the controlling
// terminal, then $COLUMNS. Prompt commands usually run with stdout captured
// by the shell, so standard streams alone are not enough.
type LocalTerminalAdapter struct {
	fds     []int
	ttyPath string
	getenv  func(string) string
}

// NewLocalTerminalAdapter constructs a LocalTerminalAdapter for the host.
func NewLocalTerminalAdapter() *LocalTerminalAdapter {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CONOUT$"
	}

	return &LocalTerminalAdapter{
		fds:     []int{int(os.Stdout.Fd()), int(os.Stderr.Fd()), int(os.Stdin.Fd())},
		ttyPath: ttyPath,
		getenv:  os.Getenv,
	}
}

// Columns returns the terminal width in columns.
func (a *LocalTerminalAdapter) Columns(_ context.Context) (int, error) {
	for _, fd := range a.fds {
		if !term.IsTerminal(fd) {
			continue
		}

		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width, nil
		}
	}

	if a.ttyPath != "" {
		if width, ok := ttyColumns(a.ttyPath); ok {
			return width, nil
		}
	}

	if width, err := strconv.Atoi(strings.TrimSpace(a.getenv("COLUMNS"))); err == nil && width > 0 {
		return width, nil
	}

	return 0, ErrNoTerminal
}

func ttyColumns(path string) (int, bool) {
	tty, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return 0, false
	}

	defer func() {
		_ = tty.Close()
	}()

	width, _, err := term.GetSize(int(tty.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}
