package controller

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

func sampleLine() m.Line {
	return m.Line{
		m.Colored(":«(", m.ColorYellow),
		m.Plain("disk 50%"),
		m.Colored(")»:", m.ColorYellow),
		m.Colored("-", m.ColorRed),
	}
}

func TestZshPainter_Paint(t *testing.T) {
	got := ZshPainter{}.Paint(sampleLine())

	assert.Equal(t, "%F{3}:«(%fdisk 50%%%F{3})»:%f%F{1}-%f", got)
}

func TestZshPainter_EscapesColoredPercent(t *testing.T) {
	got := ZshPainter{}.Paint(m.Line{m.Colored("85%", m.ColorRed)})

	assert.Equal(t, "%F{1}85%%%f", got)
}

func TestANSIPainter_Paint(t *testing.T) {
	line := sampleLine()
	got := NewANSIPainter().Paint(line)

	assert.Contains(t, got, "\x1b[33m")
	assert.Contains(t, got, "\x1b[31m")
	assert.Equal(t, line.Text(), ansi.Strip(got))
	assert.Equal(t, ansi.StringWidth(line.Text()), ansi.StringWidth(got))
}

func TestPlainPainter_Paint(t *testing.T) {
	assert.Equal(t, ":«(disk 50%)»:-", PlainPainter{}.Paint(sampleLine()))
}

func TestNewPainter(t *testing.T) {
	tests := []struct {
		shell Shell
		want  Painter
	}{
		{ShellZsh, ZshPainter{}},
		{"", ZshPainter{}},
		{ShellPlain, PlainPainter{}},
	}

	for _, tt := range tests {
		painter, err := NewPainter(tt.shell)
		require.NoError(t, err)
		assert.Equal(t, tt.want, painter)
	}

	painter, err := NewPainter(ShellANSI)
	require.NoError(t, err)
	assert.IsType(t, &ANSIPainter{}, painter)

	_, err = NewPainter("fish")
	assert.Error(t, err)
}

func TestParseShell(t *testing.T) {
	tests := []struct {
		value   string
		want    Shell
		wantErr bool
	}{
		{value: "", want: ShellZsh},
		{value: "zsh", want: ShellZsh},
		{value: " ANSI ", want: ShellANSI},
		{value: "plain", want: ShellPlain},
		{value: "bash", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseShell(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
			continue
		}

		require.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseOutputFormat(t *testing.T) {
	format, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, format)

	format, err = ParseOutputFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseOutputFormat("json")
	assert.ErrorContains(t, err, "expected table or yaml")
}
