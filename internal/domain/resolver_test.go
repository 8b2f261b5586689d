package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyunit.dev/pkg/pyunit/internal/adapter"
	"pyunit.dev/pkg/pyunit/internal/domain"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

// touch creates every file with its parent directories below root.
func touch(t *testing.T, root string, files ...string) {
	t.Helper()

	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

func newTestResolver(t *testing.T, kind m.LayoutKind) (*domain.Resolver, string) {
	t.Helper()

	root := t.TempDir()
	settings := m.DefaultSettings()
	settings.Layout = kind

	resolver, err := domain.NewResolver(settings, m.Path(root), adapter.NewLocalSourceFSAdapter())
	require.NoError(t, err)

	return resolver, root
}

func TestNewResolver_UnknownLayout(t *testing.T) {
	settings := m.DefaultSettings()
	settings.Layout = "unknown"

	_, err := domain.NewResolver(settings, "/proj", adapter.NewLocalSourceFSAdapter())
	require.ErrorIs(t, err, domain.ErrUnknownLayoutKind)
}

func TestResolver_TestFileFor(t *testing.T) {
	resolver, root := newTestResolver(t, m.LayoutFollowHierarchy)

	rel, err := resolver.TestFileFor(m.Path(filepath.Join(root, "pkg", "mod.py")))
	require.NoError(t, err)
	assert.Equal(t, "tests/test_pkg/test_mod.py", rel)
	assert.Equal(t, m.Path(filepath.Join(root, "tests", "test_pkg", "test_mod.py")), resolver.Absolutify(rel))
}

func TestResolver_IsTestFile(t *testing.T) {
	resolver, root := newTestResolver(t, m.LayoutNose)

	assert.True(t, resolver.IsTestFile(m.Path(filepath.Join(root, "tests", "pkg", "test_mod.py"))))
	assert.False(t, resolver.IsTestFile(m.Path(filepath.Join(root, "pkg", "mod.py"))))
}

func TestResolver_SourceCandidatesFor(t *testing.T) {
	resolver, root := newTestResolver(t, m.LayoutFlat)

	candidates, err := resolver.SourceCandidatesFor(m.Path(filepath.Join(root, "tests", "test_a_b.py")))
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a", "b.py")),
		m.Path(filepath.Join(root, "a", "b", "__init__.py")),
	}, candidates)
}

func TestResolver_SourceFileFor(t *testing.T) {
	t.Run("prefers the plain module", func(t *testing.T) {
		resolver, root := newTestResolver(t, m.LayoutFollowHierarchy)
		touch(t, root, "pkg/mod.py", "pkg/mod/__init__.py")

		source, err := resolver.SourceFileFor(m.Path(filepath.Join(root, "tests", "test_pkg", "test_mod.py")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "pkg", "mod.py")), source)
	})

	t.Run("falls back to the package", func(t *testing.T) {
		resolver, root := newTestResolver(t, m.LayoutFlat)
		touch(t, root, "a/b/__init__.py")

		source, err := resolver.SourceFileFor(m.Path(filepath.Join(root, "tests", "test_a_b.py")))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "a", "b", "__init__.py")), source)
	})

	t.Run("no candidate exists", func(t *testing.T) {
		resolver, root := newTestResolver(t, m.LayoutNose)

		_, err := resolver.SourceFileFor(m.Path(filepath.Join(root, "tests", "test_gone.py")))
		require.ErrorIs(t, err, domain.ErrSourceFileNotFound)
	})

	t.Run("layout errors pass through", func(t *testing.T) {
		resolver, root := newTestResolver(t, m.LayoutSideBySide)

		_, err := resolver.SourceFileFor(m.Path(filepath.Join(root, "pkg", "mod.py")))
		require.ErrorIs(t, err, domain.ErrNotATestFile)
	})
}
