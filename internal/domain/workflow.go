package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"pyunit.dev/pkg/pyunit/internal/adapter"
	"pyunit.dev/pkg/pyunit/internal/controller"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

// ResolveArgs names the file a command acts on and the settings to use.
type ResolveArgs struct {
	File     m.Path
	Settings m.Settings

	// Pinned names the settings keys whose values in Settings win over the
	// project settings file.
	Pinned []string
}

// SwitchArgs contains the arguments for switching between source and test.
type SwitchArgs struct {
	ResolveArgs

	// AssumeYes creates a missing test file without asking.
	AssumeYes bool
}

// Workflow implements the user-facing actions on top of the resolver.
type Workflow interface {
	// Switch returns the counterpart of args.File, creating a missing test
	// file after confirmation. An empty path means the user declined.
	Switch(ctx context.Context, args SwitchArgs) (m.Path, error)

	// RunTest runs the test file for args.File, or args.File itself when it
	// is a test file.
	RunTest(ctx context.Context, args ResolveArgs) (m.RunResult, error)

	// RunAll runs the whole test root of the project args.File belongs to.
	RunAll(ctx context.Context, args ResolveArgs) (m.RunResult, error)

	// Last shows the recorded run of the project args.File belongs to.
	Last(ctx context.Context, args ResolveArgs) (m.RunResult, error)

	// Which reports how args.File resolves without changing anything.
	Which(ctx context.Context, args ResolveArgs) (m.Resolution, error)

	// EffectiveSettings returns the settings in force for args.File once the
	// project settings are layered on top, along with the project root.
	EffectiveSettings(ctx context.Context, args ResolveArgs) (m.Settings, m.Path, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.TestRunnerAdapter
	adapter.SettingsStore
	controller.UI
	RootLocator

	runs adapter.RunStore
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	testAdapter adapter.TestRunnerAdapter,
	settingsStore adapter.SettingsStore,
	runStore adapter.RunStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:   fsAdapter,
		TestRunnerAdapter: testAdapter,
		SettingsStore:     settingsStore,
		UI:                ui,
		RootLocator:       NewRootLocator(fsAdapter),
		runs:              runStore,
	}
}

func (w *workflow) EffectiveSettings(ctx context.Context, args ResolveArgs) (m.Settings, m.Path, error) {
	if err := ctx.Err(); err != nil {
		return m.Settings{}, "", err
	}

	root, err := w.Locate(args.File, args.Settings.RootMarkers, args.Settings.StopAtHome)
	if err != nil {
		return m.Settings{}, "", fmt.Errorf("locate project root: %w", err)
	}

	settings, err := w.Overlay(args.Settings, root, args.Pinned)
	if err != nil {
		return m.Settings{}, "", fmt.Errorf("load project settings: %w", err)
	}

	return settings, root, nil
}

func (w *workflow) resolver(ctx context.Context, args ResolveArgs) (*Resolver, m.Settings, error) {
	settings, root, err := w.EffectiveSettings(ctx, args)
	if err != nil {
		return nil, m.Settings{}, err
	}

	resolver, err := NewResolver(settings, root, w.SourceFSAdapter)
	if err != nil {
		return nil, m.Settings{}, err
	}

	return resolver, settings, nil
}

func (w *workflow) Switch(ctx context.Context, args SwitchArgs) (m.Path, error) {
	resolver, settings, err := w.resolver(ctx, args.ResolveArgs)
	if err != nil {
		return "", err
	}

	if resolver.IsTestFile(args.File) {
		source, err := resolver.SourceFileFor(args.File)
		if err != nil {
			return "", err
		}

		w.DisplayPath(ctx, source)

		return source, nil
	}

	rel, err := resolver.TestFileFor(args.File)
	if err != nil {
		return "", err
	}

	testFile := resolver.Absolutify(rel)

	if !w.Exists(testFile) {
		if !args.AssumeYes {
			ok, err := w.Confirm(ctx, fmt.Sprintf("Test file does not exist yet. Create %s now?", testFile))
			if err != nil {
				return "", fmt.Errorf("confirm: %w", err)
			}

			if !ok {
				w.DisplayMessage(ctx, "Test file not created.")
				return "", nil
			}
		}

		if err := w.createTestFile(testFile, args.File, settings); err != nil {
			slog.Error("Failed to create test file", "path", testFile, "error", err)
			return "", err
		}
	}

	w.DisplayPath(ctx, testFile)

	return testFile, nil
}

func (w *workflow) createTestFile(testFile, source m.Path, settings m.Settings) error {
	perms, err := settings.Permissions()
	if err != nil {
		return err
	}

	created, err := w.CreateDirsWithPackageMarkers(m.Path(filepath.Dir(string(testFile))), PackageMarker, perms)
	if err != nil {
		return fmt.Errorf("create test directories: %w", err)
	}

	if err := w.CreateFile(testFile, perms.File); err != nil {
		return fmt.Errorf("create %s: %w", testFile, err)
	}

	if err := w.WriteFile(testFile, TestScaffold(source), perms.File); err != nil {
		return fmt.Errorf("write %s: %w", testFile, err)
	}

	slog.Info("created test file", "path", testFile, "directories", len(created))

	return nil
}

func (w *workflow) RunTest(ctx context.Context, args ResolveArgs) (m.RunResult, error) {
	resolver, settings, err := w.resolver(ctx, args)
	if err != nil {
		return m.RunResult{}, err
	}

	var target string
	if resolver.IsTestFile(args.File) {
		target, err = resolver.Relatize(args.File)
	} else {
		target, err = resolver.TestFileFor(args.File)
	}

	if err != nil {
		return m.RunResult{}, err
	}

	return w.execute(ctx, settings, resolver.Root(), filepath.FromSlash(target))
}

func (w *workflow) RunAll(ctx context.Context, args ResolveArgs) (m.RunResult, error) {
	settings, root, err := w.EffectiveSettings(ctx, args)
	if err != nil {
		return m.RunResult{}, err
	}

	return w.execute(ctx, settings, root, filepath.FromSlash(settings.TestRoot))
}

func (w *workflow) execute(ctx context.Context, settings m.Settings, root m.Path, target string) (m.RunResult, error) {
	runner := strings.TrimSpace(settings.RunnerCommand)
	if runner == "" {
		return m.RunResult{}, ErrNoRunnerCommand
	}

	command := strings.TrimSpace(runner + " " + target)

	matcher, err := NewLocationMatcher(settings.ResultRegex, root)
	if err != nil {
		return m.RunResult{}, err
	}

	if settings.RunnerTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, settings.RunnerTimeout)
		defer cancel()
	}

	w.DisplayRunStart(ctx, command, root)

	result := m.RunResult{Command: command, WorkDir: root}
	start := time.Now()

	code, err := w.Run(ctx, command, string(root), func(line string) {
		w.DisplayOutputLine(ctx, line)

		if loc, ok := matcher.Match(line); ok {
			result.Locations = append(result.Locations, loc)
		}
	})

	result.ExitCode = code
	result.Elapsed = time.Since(start)

	if err != nil {
		slog.Error("Test runner failed", "command", command, "error", err)
		return result, fmt.Errorf("run tests: %w", err)
	}

	slog.Info("test run finished", "command", command, "exit_code", code, "elapsed", result.Elapsed)

	if err := w.runs.Save(root, result); err != nil {
		slog.Warn("Failed to record test run", "root", root, "error", err)
	}

	if err := w.DisplayRunResult(ctx, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

func (w *workflow) Last(ctx context.Context, args ResolveArgs) (m.RunResult, error) {
	_, root, err := w.EffectiveSettings(ctx, args)
	if err != nil {
		return m.RunResult{}, err
	}

	result, err := w.runs.Last(root)
	if err != nil {
		return m.RunResult{}, err
	}

	if err := w.DisplayRunResult(ctx, result); err != nil {
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

func (w *workflow) Which(ctx context.Context, args ResolveArgs) (m.Resolution, error) {
	resolver, _, err := w.resolver(ctx, args)
	if err != nil {
		return m.Resolution{}, err
	}

	resolution := m.Resolution{
		File:   args.File,
		Root:   resolver.Root(),
		Layout: resolver.Layout().Kind(),
		IsTest: resolver.IsTestFile(args.File),
	}

	if resolution.IsTest {
		resolution.Counterparts, err = resolver.SourceCandidatesFor(args.File)
	} else {
		var rel string

		rel, err = resolver.TestFileFor(args.File)
		if err == nil {
			resolution.Counterparts = []m.Path{resolver.Absolutify(rel)}
		}
	}

	if err != nil {
		return m.Resolution{}, err
	}

	for _, counterpart := range resolution.Counterparts {
		if w.Exists(counterpart) {
			resolution.Existing = counterpart
			break
		}
	}

	if err := w.DisplayResolution(ctx, resolution); err != nil {
		return resolution, fmt.Errorf("display: %w", err)
	}

	return resolution, nil
}
