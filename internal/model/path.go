// Package model defines the data structures shared by the prompt renderer.
package model

import "unicode/utf16"

// Path represents a file system path.
type Path string

// NotFound is the offset reported when a lookup has no match.
const NotFound = -1

// Unit is a native path code unit: raw bytes on most systems, UTF-16 code
// units on Windows.
type Unit interface {
	~uint8 | ~uint16
}

// Sequence is a path spelled in its native code units.
type Sequence[U Unit] []U

// SequenceOf encodes a path into the code units of U.
func SequenceOf[U Unit](path Path) Sequence[U] {
	var zero U
	if _, wide := any(zero).(uint16); wide {
		units := utf16.Encode([]rune(string(path)))
		seq := make(Sequence[U], len(units))
		for i, u := range units {
			seq[i] = U(u)
		}

		return seq
	}

	seq := make(Sequence[U], len(path))
	for i := 0; i < len(path); i++ {
		seq[i] = U(path[i])
	}

	return seq
}

// Path decodes the sequence back into a Path.
func (s Sequence[U]) Path() Path {
	var zero U
	if _, wide := any(zero).(uint16); wide {
		units := make([]uint16, len(s))
		for i, u := range s {
			units[i] = uint16(u)
		}

		return Path(utf16.Decode(units))
	}

	raw := make([]byte, len(s))
	for i, u := range s {
		raw[i] = byte(u)
	}

	return Path(raw)
}

// RootResult is the outcome of a repository root search.
//
// When Found is false Path is empty, Length is zero and LastSeparator is
// NotFound.
type RootResult[U Unit] struct {
	Path          Sequence[U]
	Length        int
	LastSeparator int
	Found         bool
}

// RootPath returns the decoded root path, or an empty Path when no root was found.
func (r RootResult[U]) RootPath() Path {
	if !r.Found {
		return ""
	}

	return r.Path.Path()
}
