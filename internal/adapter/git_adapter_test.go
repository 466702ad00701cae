package adapter

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

const testHash = "3f786850e387550fdab836ed7e6dc881de23001b"

func newTestRepository(t *testing.T, head string) string {
	t.Helper()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, RootMarker))

	if head != "" {
		writeTestFile(t, filepath.Join(root, RootMarker, "HEAD"), head)
	}

	return root
}

func newTestGitAdapter(userConfig string) *LocalGitAdapter {
	return &LocalGitAdapter{
		binary:     "git",
		userConfig: func() (string, error) { return userConfig, nil },
	}
}

func TestLocalGitAdapter_Reference(t *testing.T) {
	ctx := context.Background()

	t.Run("symbolic ref gives the branch", func(t *testing.T) {
		root := newTestRepository(t, "ref: refs/heads/feature/river\n")

		ref, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Reference{Kind: m.ReferenceBranch, Name: "feature/river"}, ref)
	})

	t.Run("detached head gives a short hash", func(t *testing.T) {
		root := newTestRepository(t, testHash+"\n")

		ref, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Reference{Kind: m.ReferenceDetached, Name: "3f78685"}, ref)
	})

	t.Run("interactive rebase is reported", func(t *testing.T) {
		root := newTestRepository(t, testHash)
		mustMkdir(t, filepath.Join(root, RootMarker, "rebase-merge"))
		writeTestFile(t, filepath.Join(root, RootMarker, "rebase-merge", "interactive"), "")

		ref, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Reference{Kind: m.ReferenceRebase, Name: "3f78685"}, ref)
	})

	t.Run("missing head uses the repository default branch", func(t *testing.T) {
		root := newTestRepository(t, "")
		writeTestFile(t, filepath.Join(root, RootMarker, "config"), "[core]\n\tbare = false\n[init]\n\tdefaultBranch = trunk\n")

		ref, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Reference{Kind: m.ReferenceBranch, Name: "trunk"}, ref)
	})

	t.Run("missing head uses the user default branch", func(t *testing.T) {
		root := newTestRepository(t, "")
		userConfig := filepath.Join(t.TempDir(), ".gitconfig")
		writeTestFile(t, userConfig, "[init]\ndefaultBranch = \"main\"\n")

		ref, err := newTestGitAdapter(userConfig).Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, "main", ref.Name)
	})

	t.Run("missing head falls back to master", func(t *testing.T) {
		root := newTestRepository(t, "")

		ref, err := newTestGitAdapter(filepath.Join(root, "absent")).Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.DefaultBranchName, ref.Name)
	})

	t.Run("gitdir file is followed", func(t *testing.T) {
		gitDir := filepath.Join(t.TempDir(), "worktrees", "wt")
		mustMkdir(t, gitDir)
		writeTestFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/wt\n")

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, RootMarker), "gitdir: "+gitDir+"\n")

		ref, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, "wt", ref.Name)
	})

	t.Run("malformed marker file", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, RootMarker), "nonsense")

		_, err := newTestGitAdapter("").Reference(ctx, m.Path(root))
		require.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("no marker", func(t *testing.T) {
		_, err := newTestGitAdapter("").Reference(ctx, m.Path(t.TempDir()))
		require.ErrorIs(t, err, ErrNotRepository)
	})
}

func TestConfigDefaultBranch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"init section", "[init]\n\tdefaultBranch = develop\n", "develop"},
		{"case insensitive key", "[Init]\n\tdefaultbranch=next\n", "next"},
		{"other section ignored", "[core]\n\tdefaultBranch = wrong\n", ""},
		{"comments skipped", "# [init]\n[init]\n; defaultBranch = no\ndefaultBranch = yes\n", "yes"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config")
			writeTestFile(t, path, tt.content)
			assert.Equal(t, tt.want, configDefaultBranch(path))
		})
	}

	assert.Empty(t, configDefaultBranch(filepath.Join(t.TempDir(), "missing")))
}

func TestLocalGitAdapter_Dirty(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	ctx := context.Background()
	root := t.TempDir()

	if out, err := exec.Command("git", "init", "-q", root).CombinedOutput(); err != nil {
		t.Skipf("git init failed: %v: %s", err, out)
	}

	git := NewLocalGitAdapter()

	dirty, err := git.Dirty(ctx, m.Path(root))
	require.NoError(t, err)
	assert.False(t, dirty)

	writeTestFile(t, filepath.Join(root, "untracked.txt"), "river\n")

	dirty, err = git.Dirty(ctx, m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirty)
}

func TestLocalGitAdapter_DirtyOutsideRepository(t *testing.T) {
	git := &LocalGitAdapter{binary: filepath.Join(t.TempDir(), "no-such-git")}

	_, err := git.Dirty(context.Background(), m.Path(t.TempDir()))
	require.Error(t, err)
}
