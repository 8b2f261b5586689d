// Package adapter contains the filesystem, process and configuration adapters
// the domain layer talks to.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the resolver and the
// workflow rely on. It hides direct `os` access so the domain logic can be
// tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Exists reports whether anything is present at path.
	Exists(path m.Path) bool

	// IsDir reports whether path is an existing directory.
	IsDir(path m.Path) bool

	// ListDir returns the entry names of a directory, sorted.
	ListDir(path m.Path) ([]string, error)

	// EvalSymlinks returns the canonical absolute form of path.
	EvalSymlinks(path m.Path) (m.Path, error)

	// HomeDir returns the current user's home directory.
	HomeDir() (m.Path, error)

	// CreateFile creates an empty file if it does not exist yet and applies perm.
	CreateFile(path m.Path, perm os.FileMode) error

	// CreateDirsWithPackageMarkers creates dir and every missing ancestor,
	// dropping a marker file into each directory it created. It returns the
	// directories that were created, deepest first.
	CreateDirsWithPackageMarkers(dir m.Path, marker string, perms m.Permissions) ([]m.Path, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Exists reports whether anything is present at path.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// ListDir returns the sorted entry names of a directory.
func (a *LocalSourceFSAdapter) ListDir(path m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// EvalSymlinks returns the absolute path with every symlink resolved.
func (a *LocalSourceFSAdapter) EvalSymlinks(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// HomeDir returns the current user's home directory.
func (a *LocalSourceFSAdapter) HomeDir() (m.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return m.Path(home), nil
}

// CreateFile creates an empty file if missing and applies perm to it.
func (a *LocalSourceFSAdapter) CreateFile(path m.Path, perm os.FileMode) error {
	// #nosec G304 - path is computed from the project layout
	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Chmod(string(path), perm)
}

// CreateDirsWithPackageMarkers creates dir with all missing ancestors and
// places a marker file in each newly created directory.
func (a *LocalSourceFSAdapter) CreateDirsWithPackageMarkers(dir m.Path, marker string, perms m.Permissions) ([]m.Path, error) {
	var missing []m.Path

	for current := filepath.Clean(string(dir)); !a.Exists(m.Path(current)); {
		missing = append(missing, m.Path(current))

		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		current = parent
	}

	if len(missing) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(string(dir), perms.Folder); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	for _, created := range missing {
		if err := a.CreateFile(m.Path(filepath.Join(string(created), marker)), perms.File); err != nil {
			return nil, fmt.Errorf("create package marker in %s: %w", created, err)
		}

		if err := os.Chmod(string(created), perms.Folder); err != nil {
			return nil, err
		}
	}

	return missing, nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}
