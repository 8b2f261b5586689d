package domain

import (
	"fmt"
	"log/slog"

	"pyunit.dev/pkg/pyunit/internal/adapter"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

// Resolver applies a layout to absolute paths inside one project root.
type Resolver struct {
	settings m.Settings
	root     m.Path
	layout   Layout
	fs       adapter.SourceFSAdapter
}

// NewResolver binds a layout chosen from settings to a project root.
func NewResolver(settings m.Settings, root m.Path, fs adapter.SourceFSAdapter) (*Resolver, error) {
	layout, err := NewLayout(settings)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		settings: settings,
		root:     root,
		layout:   layout,
		fs:       fs,
	}, nil
}

// Root returns the project root the resolver works in.
func (r *Resolver) Root() m.Path {
	return r.root
}

// Layout returns the active layout.
func (r *Resolver) Layout() Layout {
	return r.layout
}

// Relatize expresses file relative to the project root.
func (r *Resolver) Relatize(file m.Path) (string, error) {
	return Relatize(r.root, file)
}

// Absolutify turns a root-relative path into an absolute one.
func (r *Resolver) Absolutify(rel string) m.Path {
	return Absolutify(r.root, rel)
}

// IsTestFile reports whether file is a test file under the active layout.
func (r *Resolver) IsTestFile(file m.Path) bool {
	rel, err := r.Relatize(file)
	if err != nil {
		return false
	}

	return r.layout.IsTestFile(rel)
}

// TestFileFor returns the root-relative test path for source.
func (r *Resolver) TestFileFor(source m.Path) (string, error) {
	rel, err := r.Relatize(source)
	if err != nil {
		return "", err
	}

	return r.layout.TestFile(rel)
}

// SourceCandidatesFor returns the absolute source candidates for test, in
// probing order.
func (r *Resolver) SourceCandidatesFor(test m.Path) ([]m.Path, error) {
	rel, err := r.Relatize(test)
	if err != nil {
		return nil, err
	}

	candidates, err := r.layout.SourceCandidates(rel)
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(candidates))
	for _, candidate := range candidates {
		paths = append(paths, r.Absolutify(candidate))
	}

	return paths, nil
}

// SourceFileFor returns the first source candidate that exists on disk.
func (r *Resolver) SourceFileFor(test m.Path) (m.Path, error) {
	candidates, err := r.SourceCandidatesFor(test)
	if err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		if r.fs.Exists(candidate) {
			return candidate, nil
		}

		slog.Debug("source candidate missing", "candidate", candidate)
	}

	return "", fmt.Errorf("%w for %s (tried %v)", ErrSourceFileNotFound, test, candidates)
}
