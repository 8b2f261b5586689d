package model

import "time"

// Location is a file position reported in test runner output.
type Location struct {
	File    Path
	Line    int
	Column  int
	Message string
}

// RunResult summarises one test runner invocation.
type RunResult struct {
	Command   string
	WorkDir   Path
	ExitCode  int
	Elapsed   time.Duration
	Locations []Location
}

// Passed reports whether the runner exited cleanly.
func (r RunResult) Passed() bool {
	return r.ExitCode == 0
}
