package domain

import "errors"

// Errors returned by root location and layout resolution. Callers match them
// with errors.Is; every returned error wraps one of these with the offending
// path for context.
var (
	ErrRootNotFound       = errors.New("project root not found")
	ErrNotATestFile       = errors.New("not a test file")
	ErrNotUnderSourceRoot = errors.New("not under the source root")
	ErrNotUnderTestRoot   = errors.New("not under the test root")
	ErrInvalidDepth       = errors.New("flat layout does not allow tests more than one directory deep")
	ErrNoModuleName       = errors.New("path does not name a module")
	ErrSourceFileNotFound = errors.New("source file not found")
	ErrUnknownLayoutKind  = errors.New("unknown test layout")
)

// ErrNoRunnerCommand is returned when a run is requested without a
// configured test runner command.
var ErrNoRunnerCommand = errors.New("no test runner command configured")
