package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

func TestLastSeparator(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		backslash bool
		want      int
	}{
		{name: "unix", path: "/home/u/proj", want: 7},
		{name: "trailing", path: "/home/", want: 5},
		{name: "root", path: "/", want: 0},
		{name: "no separator", path: "proj", want: m.NotFound},
		{name: "empty", path: "", want: m.NotFound},
		{name: "backslash ignored on unix", path: `/a\b`, want: 0},
		{name: "windows", path: `C:\Users\u`, backslash: true, want: 8},
		{name: "windows mixed", path: `C:\Users/u`, backslash: true, want: 8},
		{name: "windows drive", path: `C:`, backslash: true, want: m.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastSeparator([]byte(tt.path), tt.backslash))
			assert.Equal(t, tt.want, LastSeparator(m.SequenceOf[uint16](m.Path(tt.path)), tt.backslash))
		})
	}
}

func TestLastSeparator_NothingAfterOffset(t *testing.T) {
	paths := []string{"/a/b/c", "a/b", "/", "abc", `x\y\z`, "/é/日本/ü", "//"}

	for _, path := range paths {
		for _, backslash := range []bool{false, true} {
			seq := m.SequenceOf[uint16](m.Path(path))
			offset := LastSeparator(seq, backslash)

			if offset == m.NotFound {
				for _, unit := range seq {
					assert.False(t, isSeparator(unit, backslash), "path %q", path)
				}

				continue
			}

			assert.True(t, isSeparator(seq[offset], backslash), "path %q", path)

			for _, unit := range seq[offset+1:] {
				assert.False(t, isSeparator(unit, backslash), "path %q", path)
			}
		}
	}
}

func TestFindLastSeparator_UsesHostSeparators(t *testing.T) {
	assert.Equal(t, 4, FindLastSeparator([]byte("/tmp/x")))

	want := m.NotFound
	if hostBackslash {
		want = 1
	}

	assert.Equal(t, want, FindLastSeparator([]byte(`a\b`)))
}

func TestRootPrefixLength(t *testing.T) {
	tests := []struct {
		path      string
		backslash bool
		want      int
	}{
		{"/home/u", false, 1},
		{"relative/dir", false, 0},
		{"", false, 0},
		{`C:\Users`, true, 3},
		{`c:/Users`, true, 3},
		{`C:`, true, 2},
		{`C:relative`, true, 2},
		{`\\server\share\dir`, true, 15},
		{`\\server\share`, true, 14},
		{`\rooted`, true, 1},
		{`relative\dir`, true, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rootPrefixLength([]byte(tt.path), tt.backslash), "path %q", tt.path)
	}
}
