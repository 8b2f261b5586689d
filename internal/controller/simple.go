package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// SimpleUI implements UI with plain text on the cobra command's streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Confirm prints message to stderr and reads a y/N answer from stdin.
func (s *SimpleUI) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s [y/N]: ", message)

	line, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return isYes(line), nil
}

// DisplayMessage prints an informational message to stderr.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), message)
}

// DisplayPath prints path alone on stdout.
func (s *SimpleUI) DisplayPath(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", path)
}

// DisplayResolution prints how a file maps onto its counterparts.
func (s *SimpleUI) DisplayResolution(ctx context.Context, resolution m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderResolutionTable(resolution))

	return nil
}

// DisplayRunStart announces the command about to run.
func (s *SimpleUI) DisplayRunStart(ctx context.Context, command string, workDir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %q in %s\n", command, workDir)
}

// DisplayOutputLine echoes one line of runner output.
func (s *SimpleUI) DisplayOutputLine(ctx context.Context, line string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", line)
}

// DisplayRunResult prints the run summary and the reported locations.
func (s *SimpleUI) DisplayRunResult(ctx context.Context, result m.RunResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", runSummary(result))

	if len(result.Locations) == 0 {
		return nil
	}

	s.printf("\n%s", renderLocationTable(result.Locations))
	s.printf("%s\n", locationSummary(result))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func runSummary(result m.RunResult) string {
	seconds := result.Elapsed.Seconds()
	if result.Passed() {
		return fmt.Sprintf("[No failed tests. Finished in %.1fs]", seconds)
	}

	return fmt.Sprintf("[Finished in %.1fs with exit code %d]", seconds, result.ExitCode)
}

func locationSummary(result m.RunResult) string {
	if len(result.Locations) == 0 {
		return "Run finished without errors"
	}

	return fmt.Sprintf("Run finished with %d errors", len(result.Locations))
}

func renderLocationTable(locations []m.Location) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Line", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, loc := range locations {
		line := ""
		if loc.Line > 0 {
			line = strconv.Itoa(loc.Line)
		}

		table.Append([]string{string(loc.File), line, loc.Message})
	}

	table.Render()

	return tableBuffer.String()
}

func renderResolutionTable(resolution m.Resolution) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	kind := "source"
	label := "test file"

	if resolution.IsTest {
		kind = "test"
		label = "candidate"
	}

	table.Append([]string{"file", string(resolution.File)})
	table.Append([]string{"kind", kind})
	table.Append([]string{"root", string(resolution.Root)})
	table.Append([]string{"layout", string(resolution.Layout)})

	for _, counterpart := range resolution.Counterparts {
		value := string(counterpart)
		if counterpart == resolution.Existing {
			value += " (exists)"
		}

		table.Append([]string{label, value})
	}

	table.Render()

	return tableBuffer.String()
}
