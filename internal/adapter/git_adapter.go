package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// RootMarker is the entry whose presence marks a repository root.
const RootMarker = ".git"

const shortHashLength = 7

// ErrNotRepository is returned when a path holds no usable git metadata.
var ErrNotRepository = errors.New("not a git repository")

// GitAdapter reads repository metadata for the git segment.
type GitAdapter interface {
	// Reference describes the HEAD of the repository rooted at root.
	Reference(ctx context.Context, root m.Path) (m.Reference, error)

	// Dirty reports whether the work tree of root has uncommitted changes.
	Dirty(ctx context.Context, root m.Path) (bool, error)
}

// LocalGitAdapter reads the git directory directly and shells out to the
// git binary only for the work tree status.
type LocalGitAdapter struct {
	binary     string
	userConfig func() (string, error)
}

// NewLocalGitAdapter constructs a LocalGitAdapter using the git found in $PATH.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{
		binary: "git",
		userConfig: func() (string, error) {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}

			return filepath.Join(home, ".gitconfig"), nil
		},
	}
}

// Reference resolves HEAD. Symbolic refs give a branch, a bare hash gives a
// detached reference, and an interactive rebase in progress gives a rebase
// reference. When HEAD can not be read the configured default branch is used.
func (a *LocalGitAdapter) Reference(_ context.Context, root m.Path) (m.Reference, error) {
	gitDir, err := resolveGitDir(string(root))
	if err != nil {
		return m.Reference{}, err
	}

	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return m.Reference{Kind: m.ReferenceBranch, Name: a.defaultBranch(gitDir)}, nil
	}

	content := strings.TrimSpace(string(head))
	if ref, ok := strings.CutPrefix(content, "ref:"); ok {
		ref = strings.TrimSpace(ref)
		if branch, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
			return m.Reference{Kind: m.ReferenceBranch, Name: branch}, nil
		}

		return m.Reference{Kind: m.ReferenceBranch, Name: strings.TrimPrefix(ref, "refs/")}, nil
	}

	if content == "" {
		return m.Reference{Kind: m.ReferenceBranch, Name: a.defaultBranch(gitDir)}, nil
	}

	kind := m.ReferenceDetached
	if isInteractiveRebase(gitDir) {
		kind = m.ReferenceRebase
	}

	return m.Reference{Kind: kind, Name: shortHash(content)}, nil
}

// Dirty runs `git status --porcelain` and reports any non-ignored change.
func (a *LocalGitAdapter) Dirty(ctx context.Context, root m.Path) (bool, error) {
	cmd := exec.CommandContext(ctx, a.binary, "--no-optional-locks", "-C", string(root), "status", "--porcelain")

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return false, fmt.Errorf("git status: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return len(bytes.TrimSpace(stdout.Bytes())) > 0, nil
}

func (a *LocalGitAdapter) defaultBranch(gitDir string) string {
	if name := configDefaultBranch(filepath.Join(gitDir, "config")); name != "" {
		return name
	}

	if a.userConfig != nil {
		if path, err := a.userConfig(); err == nil {
			if name := configDefaultBranch(path); name != "" {
				return name
			}
		}
	}

	return m.DefaultBranchName
}

// resolveGitDir follows `.git` files written by worktrees and submodules.
func resolveGitDir(root string) (string, error) {
	marker := filepath.Join(root, RootMarker)

	info, err := os.Stat(marker)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotRepository, err)
	}

	if info.IsDir() {
		return marker, nil
	}

	content, err := os.ReadFile(marker)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNotRepository, err)
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(string(content)), "gitdir:")
	if !ok {
		return "", fmt.Errorf("%w: malformed %s file", ErrNotRepository, marker)
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}

	return target, nil
}

func isInteractiveRebase(gitDir string) bool {
	_, err := os.Stat(filepath.Join(gitDir, "rebase-merge", "interactive"))
	return err == nil
}

func shortHash(hash string) string {
	if len(hash) > shortHashLength {
		return hash[:shortHashLength]
	}

	return hash
}

// configDefaultBranch extracts init.defaultBranch from a git config file.
func configDefaultBranch(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}

	defer func() {
		_ = f.Close()
	}()

	section := ""
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		if section != "init" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "defaultBranch") {
			continue
		}

		return strings.Trim(strings.TrimSpace(value), `"`)
	}

	return ""
}
