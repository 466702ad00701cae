package domain

import (
	"context"
	"log/slog"
	"slices"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// RootFinder locates the repository root enclosing a path.
type RootFinder[U m.Unit] interface {
	// Find walks from path towards the filesystem root and returns the first
	// directory holding the repository marker.
	Find(ctx context.Context, path m.Sequence[U]) m.RootResult[U]
}

type rootFinder[U m.Unit] struct {
	adapter.FSAdapter
	backslash bool
}

// NewRootFinder creates a RootFinder that probes the filesystem through fs
// using the host separator set.
func NewRootFinder[U m.Unit](fs adapter.FSAdapter) RootFinder[U] {
	return newRootFinder[U](fs, hostBackslash)
}

func newRootFinder[U m.Unit](fs adapter.FSAdapter, backslash bool) *rootFinder[U] {
	return &rootFinder[U]{FSAdapter: fs, backslash: backslash}
}

// Find probes `<candidate>/.git` for the path and each of its ancestors. The
// walk stops at the filesystem root, which is probed once. Trailing
// separators of path are ignored.
func (f *rootFinder[U]) Find(ctx context.Context, path m.Sequence[U]) m.RootResult[U] {
	notFound := m.RootResult[U]{LastSeparator: m.NotFound}

	rootLen := rootPrefixLength(path, f.backslash)

	end := len(path)
	for end > rootLen && isSeparator(path[end-1], f.backslash) {
		end--
	}

	if end == 0 {
		return notFound
	}

	candidate := path[:end]

	for {
		if f.hasMarker(ctx, candidate) {
			root := slices.Clone(candidate)

			return m.RootResult[U]{
				Path:          root,
				Length:        len(root),
				LastSeparator: LastSeparator(root, f.backslash),
				Found:         true,
			}
		}

		if len(candidate) <= rootLen {
			return notFound
		}

		sep := LastSeparator(candidate, f.backslash)
		switch {
		case sep == m.NotFound:
			return notFound
		case sep < rootLen:
			candidate = candidate[:rootLen]
		default:
			candidate = candidate[:sep]
		}
	}
}

func (f *rootFinder[U]) hasMarker(ctx context.Context, candidate m.Sequence[U]) bool {
	probe := f.markerPath(candidate)

	if _, err := f.FileInfo(ctx, probe); err != nil {
		slog.Debug("repository marker not found", "path", probe, "error", err)
		return false
	}

	return true
}

func (f *rootFinder[U]) markerPath(candidate m.Sequence[U]) m.Path {
	marker := m.SequenceOf[U](adapter.RootMarker)

	probe := make(m.Sequence[U], 0, len(candidate)+1+len(marker))
	probe = append(probe, candidate...)

	if len(probe) > 0 && !isSeparator(probe[len(probe)-1], f.backslash) {
		probe = append(probe, f.separator())
	}

	probe = append(probe, marker...)

	return probe.Path()
}

func (f *rootFinder[U]) separator() U {
	if f.backslash {
		return '\\'
	}

	return '/'
}
