// Package controller provides the terminal front ends of the pyunit commands.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// UI is everything the workflow needs from the user's terminal.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Confirm asks a yes/no question; anything but an explicit yes is no.
	Confirm(ctx context.Context, message string) (bool, error)
	DisplayMessage(ctx context.Context, message string)
	// DisplayPath prints a resolved path for the editor or shell to open.
	DisplayPath(ctx context.Context, path m.Path)
	DisplayResolution(ctx context.Context, resolution m.Resolution) error
	DisplayRunStart(ctx context.Context, command string, workDir m.Path)
	DisplayOutputLine(ctx context.Context, line string)
	DisplayRunResult(ctx context.Context, result m.RunResult) error
}

// NewUI returns the TUI when attached to a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file refers to a terminal device.
func IsTTY(file *os.File) bool {
	if file == nil {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
