package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	maxOutputLine = 1024 * 1024

	// pipeGrace is how long output may keep flowing after cancellation.
	// Children of the shell can hold the pipes open after it is killed.
	pipeGrace = 2 * time.Second
)

// LineFunc receives each line the test runner prints, stdout and stderr
// interleaved in arrival order.
type LineFunc func(line string)

// TestRunnerAdapter abstracts running the configured test command.
type TestRunnerAdapter interface {
	// Run executes command through the platform shell inside workDir,
	// streaming output lines to onLine. A non-zero exit code is reported
	// through the returned code, not as an error.
	Run(ctx context.Context, command string, workDir string, onLine LineFunc) (exitCode int, err error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter. The timeout
// applies only when the caller's context carries no deadline; zero disables it.
func NewLocalTestRunnerAdapter(timeout time.Duration) *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{
		timeout: timeout,
	}
}

// Run executes command in workDir and streams its output.
func (a *LocalTestRunnerAdapter) Run(ctx context.Context, command string, workDir string, onLine LineFunc) (int, error) {
	if _, ok := ctx.Deadline(); !ok && a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	name, args := shellCommand(command)

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir
	cmd.WaitDelay = pipeGrace

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, err
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, err
	}

	slog.Debug("starting test runner", "command", command, "dir", workDir)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("start %q: %w", command, err)
	}

	var mu sync.Mutex

	emit := func(line string) {
		mu.Lock()
		defer mu.Unlock()

		if onLine != nil {
			onLine(line)
		}
	}

	var closeOnce sync.Once

	closePipes := func() {
		closeOnce.Do(func() {
			_ = stdout.Close()
			_ = stderr.Close()
		})
	}

	var (
		graceMu sync.Mutex
		grace   *time.Timer
	)

	stopWatch := context.AfterFunc(ctx, func() {
		graceMu.Lock()
		defer graceMu.Unlock()

		grace = time.AfterFunc(pipeGrace, closePipes)
	})

	var pumps errgroup.Group

	pumps.Go(func() error { return pumpLines(stdout, emit) })
	pumps.Go(func() error { return pumpLines(stderr, emit) })

	pumpErr := pumps.Wait()

	stopWatch()
	graceMu.Lock()
	if grace != nil {
		grace.Stop()
	}
	graceMu.Unlock()

	waitErr := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, fmt.Errorf("run %q: %w", command, ctxErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, fmt.Errorf("run %q: %w", command, waitErr)
	}

	if pumpErr != nil {
		return 0, fmt.Errorf("read output of %q: %w", command, pumpErr)
	}

	return 0, nil
}

func pumpLines(r io.Reader, emit LineFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLine)

	for scanner.Scan() {
		emit(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		// the writer blocks on a full pipe unless it is drained
		_, _ = io.Copy(io.Discard, r)

		slog.Warn("test runner output not fully read", "error", err)

		return err
	}

	return nil
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}

	return "sh", []string{"-c", command}
}
