package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// PathStyle selects how the working directory is displayed inside a repository.
type PathStyle string

// Supported path styles.
const (
	// PathStyleAbbreviated shortens the directories above the repository root.
	PathStyleAbbreviated PathStyle = "abbreviated"
	// PathStyleRepository shows the path relative to the repository parent, as `@/repo/...`.
	PathStyleRepository PathStyle = "repository"
)

const homeAlias = "~"

// ParsePathStyle validates a path style name.
func ParsePathStyle(value string) (PathStyle, error) {
	switch style := PathStyle(strings.ToLower(strings.TrimSpace(value))); style {
	case PathStyleAbbreviated, PathStyleRepository:
		return style, nil
	case "":
		return PathStyleAbbreviated, nil
	default:
		return "", fmt.Errorf("unknown path style %q", value)
	}
}

// PathAbbreviator renders the working directory for the path segment.
type PathAbbreviator[U m.Unit] struct {
	home      m.Path
	style     PathStyle
	backslash bool
}

// NewPathAbbreviator creates a PathAbbreviator for the host separator set.
// An empty home disables the `~` alias.
func NewPathAbbreviator[U m.Unit](home m.Path, style PathStyle) *PathAbbreviator[U] {
	return &PathAbbreviator[U]{home: home, style: style, backslash: hostBackslash}
}

// splitPath is a path broken into its root prefix and non-empty components.
type splitPath struct {
	prefix     string
	components []string
}

// Abbreviate renders workingDir for display. Outside a repository the full path
// is shown; inside one, the directories above the repository root are reduced
// to their first character. The last component is never shortened.
func (a *PathAbbreviator[U]) Abbreviate(workingDir m.Path, root m.RootResult[U]) string {
	wd := a.split(string(workingDir))

	if !root.Found {
		return a.full(wd)
	}

	repo := a.split(string(root.RootPath()))
	if len(repo.components) == 0 || !a.hasPrefix(wd, repo) {
		return a.full(wd)
	}

	if a.style == PathStyleRepository {
		rest := wd.components[len(repo.components)-1:]
		return "@" + a.separator() + strings.Join(rest, a.separator())
	}

	lead := a.canonical(repo.prefix)
	start := 0

	if home := a.split(string(a.home)); len(home.components) > 0 &&
		len(home.components) < len(repo.components) && a.hasPrefix(repo, home) {
		lead = homeAlias + a.separator()
		start = len(home.components)
	}

	parts := make([]string, 0, len(wd.components)-start)
	for i := start; i < len(repo.components)-1; i++ {
		parts = append(parts, shorten(wd.components[i]))
	}

	parts = append(parts, wd.components[len(repo.components)-1:]...)

	return lead + strings.Join(parts, a.separator())
}

// full renders the whole path, collapsing the home directory into `~`.
func (a *PathAbbreviator[U]) full(wd splitPath) string {
	if home := a.split(string(a.home)); len(home.components) > 0 && a.hasPrefix(wd, home) {
		rest := wd.components[len(home.components):]
		if len(rest) == 0 {
			return homeAlias
		}

		return homeAlias + a.separator() + strings.Join(rest, a.separator())
	}

	return a.canonical(wd.prefix) + strings.Join(wd.components, a.separator())
}

func (a *PathAbbreviator[U]) split(path string) splitPath {
	prefixLen := rootPrefixLength([]byte(path), a.backslash)
	out := splitPath{prefix: path[:prefixLen]}

	isSep := func(r rune) bool { return r == '/' || (a.backslash && r == '\\') }
	out.components = strings.FieldsFunc(path[prefixLen:], isSep)

	return out
}

// hasPrefix reports whether base is an ancestor of, or equal to, path at a
// component boundary.
func (a *PathAbbreviator[U]) hasPrefix(path, base splitPath) bool {
	if !a.same(a.canonical(path.prefix), a.canonical(base.prefix)) || len(base.components) > len(path.components) {
		return false
	}

	for i, component := range base.components {
		if !a.same(path.components[i], component) {
			return false
		}
	}

	return true
}

// same compares path components, ignoring case on Windows.
func (a *PathAbbreviator[U]) same(x, y string) bool {
	if a.backslash {
		return strings.EqualFold(x, y)
	}

	return x == y
}

func (a *PathAbbreviator[U]) canonical(prefix string) string {
	if a.backslash {
		return strings.ReplaceAll(prefix, "/", `\`)
	}

	return prefix
}

func (a *PathAbbreviator[U]) separator() string {
	if a.backslash {
		return `\`
	}

	return "/"
}

// shorten keeps the first character of a component, or the first two for
// dot-prefixed names.
func shorten(component string) string {
	_, size := utf8.DecodeRuneInString(component)
	if component[0] == '.' && size < len(component) {
		_, next := utf8.DecodeRuneInString(component[size:])
		size += next
	}

	return component[:size]
}
