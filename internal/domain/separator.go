// Package domain implements the prompt rendering logic: repository root
// search, path abbreviation, segment collection and row layout.
package domain

import (
	"path/filepath"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// hostBackslash reports whether the host treats `\` as a path separator.
var hostBackslash = filepath.Separator == '\\'

// FindLastSeparator returns the offset of the last path separator of path
// using the host separator set, or m.NotFound.
func FindLastSeparator[U m.Unit](path []U) int {
	return LastSeparator(path, hostBackslash)
}

// LastSeparator returns the offset of the last path separator of path, or
// m.NotFound. `/` is always a separator; `\` only when backslash is set.
func LastSeparator[U m.Unit](path []U, backslash bool) int {
	for i := len(path) - 1; i >= 0; i-- {
		if isSeparator(path[i], backslash) {
			return i
		}
	}

	return m.NotFound
}

func isSeparator[U m.Unit](unit U, backslash bool) bool {
	return unit == '/' || (backslash && unit == '\\')
}

// rootPrefixLength returns the length of the filesystem root prefix of path:
// `/` on Unix, `C:\`, `C:` or `\\server\share\` on Windows. Relative paths
// have no prefix.
func rootPrefixLength[U m.Unit](path []U, backslash bool) int {
	if len(path) == 0 {
		return 0
	}

	if !backslash {
		if path[0] == '/' {
			return 1
		}

		return 0
	}

	if len(path) >= 2 && path[1] == ':' && isDriveLetter(path[0]) {
		if len(path) >= 3 && isSeparator(path[2], true) {
			return 3
		}

		return 2
	}

	if len(path) >= 2 && isSeparator(path[0], true) && isSeparator(path[1], true) {
		return uncPrefixLength(path)
	}

	if isSeparator(path[0], true) {
		return 1
	}

	return 0
}

// uncPrefixLength measures `\\server\share\`, including the trailing
// separator when present.
func uncPrefixLength[U m.Unit](path []U) int {
	i := 2
	for components := 0; components < 2; components++ {
		for i < len(path) && !isSeparator(path[i], true) {
			i++
		}

		if i == len(path) {
			return i
		}

		i++
	}

	return i
}

func isDriveLetter[U m.Unit](unit U) bool {
	return (unit >= 'a' && unit <= 'z') || (unit >= 'A' && unit <= 'Z')
}
