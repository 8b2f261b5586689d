package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"pyunit.dev/pkg/pyunit/internal/adapter"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

// RootLocator finds the project root a file belongs to.
type RootLocator interface {
	// Locate walks upward from start and returns the first directory holding
	// an entry that matches one of the marker globs.
	Locate(start m.Path, markers []string, stopAtHome bool) (m.Path, error)
}

type rootLocator struct {
	fs adapter.SourceFSAdapter
}

// NewRootLocator constructs a RootLocator backed by the filesystem adapter.
func NewRootLocator(fs adapter.SourceFSAdapter) RootLocator {
	return &rootLocator{fs: fs}
}

func (rl *rootLocator) Locate(start m.Path, markers []string, stopAtHome bool) (m.Path, error) {
	dir := start
	if !rl.fs.IsDir(dir) {
		resolved, err := rl.fs.EvalSymlinks(start)
		if err != nil {
			// Files that do not exist yet still have an ancestry to search.
			resolved = m.Path(filepath.Clean(string(start)))
		}

		dir = m.Path(filepath.Dir(string(resolved)))
	}

	home := rl.home(stopAtHome)

	for {
		resolved, err := rl.fs.EvalSymlinks(dir)
		if errors.Is(err, os.ErrNotExist) {
			// Directories of files about to be created may not exist yet.
			parent := m.Path(filepath.Dir(string(dir)))
			if parent == dir {
				return "", fmt.Errorf("%w for %s", ErrRootNotFound, start)
			}

			dir = parent

			continue
		}

		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", dir, err)
		}

		if isFilesystemRoot(resolved) || (home != "" && resolved == home) {
			return "", fmt.Errorf("%w for %s (stopped at %s)", ErrRootNotFound, start, resolved)
		}

		names, err := rl.fs.ListDir(resolved)
		if err != nil {
			return "", fmt.Errorf("list %s: %w", resolved, err)
		}

		matched, err := matchesAny(names, markers)
		if err != nil {
			return "", err
		}

		if matched {
			slog.Debug("located project root", "start", start, "root", resolved)
			return resolved, nil
		}

		dir = m.Path(filepath.Dir(string(resolved)))
	}
}

func (rl *rootLocator) home(stopAtHome bool) m.Path {
	if !stopAtHome {
		return ""
	}

	home, err := rl.fs.HomeDir()
	if err != nil {
		slog.Warn("cannot determine home directory", "error", err)
		return ""
	}

	if resolved, err := rl.fs.EvalSymlinks(home); err == nil {
		return resolved
	}

	return home
}

func isFilesystemRoot(dir m.Path) bool {
	return filepath.Dir(string(dir)) == string(dir)
}

// matchesAny reports whether any entry name matches any marker glob.
func matchesAny(names []string, markers []string) (bool, error) {
	fold := runtime.GOOS == "windows" || runtime.GOOS == "darwin"

	for _, marker := range markers {
		if fold {
			marker = strings.ToLower(marker)
		}

		for _, name := range names {
			if fold {
				name = strings.ToLower(name)
			}

			ok, err := filepath.Match(marker, name)
			if err != nil {
				return false, fmt.Errorf("root marker %q: %w", marker, err)
			}

			if ok {
				return true, nil
			}
		}
	}

	return false, nil
}
