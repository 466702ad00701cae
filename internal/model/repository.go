package model

// ReferenceKind tells how the repository HEAD is currently described.
type ReferenceKind int

const (
	// ReferenceBranch is a symbolic HEAD pointing at a branch.
	ReferenceBranch ReferenceKind = iota
	// ReferenceDetached is a HEAD pointing directly at a commit.
	ReferenceDetached
	// ReferenceRebase is a HEAD detached by an interactive rebase.
	ReferenceRebase
)

// DefaultBranchName is the branch name git uses when nothing else is known.
const DefaultBranchName = "master"

// Reference is the state of a repository HEAD.
type Reference struct {
	Kind ReferenceKind
	// Name is the branch name, or an abbreviated commit hash for detached and
	// rebase references.
	Name string
}

// Repository is the metadata of the repository enclosing the working directory.
type Repository struct {
	Root      Path
	Reference Reference
	Dirty     bool
}
