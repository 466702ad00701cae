package model

// Inputs holds the read-only values the invoking shell supplies for one render.
type Inputs struct {
	// Columns overrides the terminal width query when greater than zero.
	Columns int
	// ExitCode is the exit status of the previous command.
	ExitCode int
	// Elevated states the shell runs with administrator privileges.
	Elevated bool
	// Jobs is the number of background jobs of the shell.
	Jobs int
	// VirtualEnv is the path of the active Python virtual environment, if any.
	VirtualEnv string
	// Home is the user home directory used for the `~` alias.
	Home Path
}

// EntryCounts tallies the entries of a directory per type.
type EntryCounts struct {
	Directories int
	Files       int
	Sockets     int
	Fifos       int
	Blocks      int
	Characters  int
	Symlinks    int
	Hidden      int
	Temporary   int
}

// Total returns the number of entries counted once per entry.
func (c EntryCounts) Total() int {
	return c.Directories + c.Files + c.Sockets + c.Fifos + c.Blocks + c.Characters + c.Symlinks
}
