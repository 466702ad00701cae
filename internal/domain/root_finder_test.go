package domain

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	adaptermocks "riverdreams.dev/pkg/riverdreams/internal/adapter/mocks"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// markerFS answers FileInfo for the given marker paths only and records the probes.
func markerFS(t *testing.T, markers ...m.Path) (*adaptermocks.MockFSAdapter, *[]m.Path) {
	t.Helper()

	fsAdapter := adaptermocks.NewMockFSAdapter(t)
	probes := &[]m.Path{}

	fsAdapter.EXPECT().FileInfo(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, path m.Path) (fs.FileInfo, error) {
			*probes = append(*probes, path)

			for _, marker := range markers {
				if path == marker {
					return nil, nil
				}
			}

			return nil, os.ErrNotExist
		}).Maybe()

	return fsAdapter, probes
}

func TestRootFinder_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("finds the enclosing repository", func(t *testing.T) {
		fsAdapter, probes := markerFS(t, "/home/u/proj/.git")
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("/home/u/proj/src"))

		require.True(t, result.Found)
		assert.Equal(t, m.Path("/home/u/proj"), result.RootPath())
		assert.Equal(t, 12, result.Length)
		assert.Equal(t, 7, result.LastSeparator)
		assert.Equal(t, []m.Path{"/home/u/proj/src/.git", "/home/u/proj/.git"}, *probes)
	})

	t.Run("walks up to the filesystem root", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("/tmp/x"))

		assert.False(t, result.Found)
		assert.Empty(t, result.Path)
		assert.Zero(t, result.Length)
		assert.Equal(t, m.NotFound, result.LastSeparator)
		assert.Equal(t, []m.Path{"/tmp/x/.git", "/tmp/.git", "/.git"}, *probes)
	})

	t.Run("filesystem root is probed once", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("/"))

		assert.False(t, result.Found)
		assert.Equal(t, []m.Path{"/.git"}, *probes)
	})

	t.Run("repository at the filesystem root", func(t *testing.T) {
		fsAdapter, _ := markerFS(t, "/.git")
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("/etc"))

		require.True(t, result.Found)
		assert.Equal(t, m.Path("/"), result.RootPath())
		assert.Equal(t, 0, result.LastSeparator)
	})

	t.Run("trailing separators are ignored", func(t *testing.T) {
		fsAdapter, probes := markerFS(t, "/a/b/.git")
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("/a/b//"))

		require.True(t, result.Found)
		assert.Equal(t, m.Path("/a/b"), result.RootPath())
		assert.Equal(t, []m.Path{"/a/b/.git"}, *probes)
	})

	t.Run("relative paths stop at the first component", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, m.SequenceOf[uint8]("a/b"))

		assert.False(t, result.Found)
		assert.Equal(t, []m.Path{"a/b/.git", "a/.git"}, *probes)
	})

	t.Run("empty path", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint8](fsAdapter, false)

		result := finder.Find(ctx, nil)

		assert.False(t, result.Found)
		assert.Empty(t, *probes)
	})

	t.Run("windows drive paths in UTF-16", func(t *testing.T) {
		fsAdapter, probes := markerFS(t, `C:\Users\ü\repo\.git`)
		finder := newRootFinder[uint16](fsAdapter, true)

		result := finder.Find(ctx, m.SequenceOf[uint16](`C:\Users\ü\repo\src\日本`))

		require.True(t, result.Found)
		assert.Equal(t, m.Path(`C:\Users\ü\repo`), result.RootPath())
		assert.Equal(t, 10, result.LastSeparator)
		assert.Len(t, *probes, 3)
	})

	t.Run("windows drive root is probed once", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint16](fsAdapter, true)

		result := finder.Find(ctx, m.SequenceOf[uint16](`C:\Users`))

		assert.False(t, result.Found)
		assert.Equal(t, []m.Path{`C:\Users\.git`, `C:\.git`}, *probes)
	})

	t.Run("unc share is the last candidate", func(t *testing.T) {
		fsAdapter, probes := markerFS(t)
		finder := newRootFinder[uint16](fsAdapter, true)

		result := finder.Find(ctx, m.SequenceOf[uint16](`\\srv\share\dir`))

		assert.False(t, result.Found)
		assert.Equal(t, []m.Path{`\\srv\share\dir\.git`, `\\srv\share\.git`}, *probes)
	})
}

func TestRootFinder_FindIsIdempotent(t *testing.T) {
	ctx := context.Background()
	fsAdapter, _ := markerFS(t, "/w/repo/.git")
	finder := newRootFinder[uint8](fsAdapter, false)

	first := finder.Find(ctx, m.SequenceOf[uint8]("/w/repo/a/b/c"))
	require.True(t, first.Found)

	second := finder.Find(ctx, first.Path)
	assert.Equal(t, first, second)

	input := m.SequenceOf[uint8]("/w/repo/a/b/c")
	assert.Equal(t, input[:first.Length], first.Path)
	assert.LessOrEqual(t, first.LastSeparator, first.Length)
}

func TestRootFinder_LocalFilesystem(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "repo", "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "repo", adapter.RootMarker), 0o755))

	finder := NewRootFinder[m.NativeUnit](adapter.NewLocalFSAdapter())
	result := finder.Find(context.Background(), m.SequenceOf[m.NativeUnit](m.Path(nested)))

	require.True(t, result.Found)
	assert.Equal(t, m.Path(filepath.Join(root, "repo")), result.RootPath())
}
