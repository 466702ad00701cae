// Package adapter contains the operating-system adapters the prompt relies on.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// ErrNoWorkingDirectory is returned when neither the OS nor $PWD can tell
// where the shell currently is.
var ErrNoWorkingDirectory = errors.New("can not resolve the current directory")

// FSAdapter abstracts the filesystem queries the domain layer performs while
// rendering. It hides direct `os` access so the root search and the segment
// collectors can be tested without touching the disk.
type FSAdapter interface {
	// WorkingDir returns the directory the shell is in.
	WorkingDir(ctx context.Context) (m.Path, error)

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error)

	// Writable reports whether the current user may create entries in path.
	Writable(ctx context.Context, path m.Path) bool
}

// LocalFSAdapter implements FSAdapter against the real filesystem.
type LocalFSAdapter struct {
	getwd  func() (string, error)
	getenv func(string) string
}

// NewLocalFSAdapter constructs a LocalFSAdapter backed by the os package.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{
		getwd:  os.Getwd,
		getenv: os.Getenv,
	}
}

// WorkingDir resolves the working directory, falling back to $PWD when the
// directory was removed from under the shell.
func (a *LocalFSAdapter) WorkingDir(_ context.Context) (m.Path, error) {
	wd, err := a.getwd()
	if err == nil {
		return m.Path(wd), nil
	}

	pwd := a.getenv("PWD")
	if pwd == "" || pwd == "." || pwd == ".." {
		return "", fmt.Errorf("%w: %w", ErrNoWorkingDirectory, err)
	}

	return m.Path(pwd), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists the entries of a directory without sorting guarantees.
func (a *LocalFSAdapter) ReadDir(_ context.Context, path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// Writable reports whether the current user may create entries in path.
func (a *LocalFSAdapter) Writable(_ context.Context, path m.Path) bool {
	return writable(string(path))
}
