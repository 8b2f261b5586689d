package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

func newTestLayout(t *testing.T, kind m.LayoutKind, sourceRoot string) Layout {
	t.Helper()

	settings := m.DefaultSettings()
	settings.Layout = kind
	settings.SourceRoot = sourceRoot

	layout, err := NewLayout(settings)
	require.NoError(t, err)
	require.Equal(t, kind, layout.Kind())

	return layout
}

func TestNewLayout_UnknownKind(t *testing.T) {
	settings := m.DefaultSettings()
	settings.Layout = "pytest-magic"

	layout, err := NewLayout(settings)
	require.ErrorIs(t, err, ErrUnknownLayoutKind)
	assert.Nil(t, layout)
	assert.Contains(t, err.Error(), "pytest-magic")
}

func TestNewLayout_AllKinds(t *testing.T) {
	for _, kind := range m.LayoutKinds() {
		newTestLayout(t, kind, "")
	}
}

func TestSideBySideLayout(t *testing.T) {
	layout := newTestLayout(t, m.LayoutSideBySide, "")

	t.Run("TestFile prefixes the file name in place", func(t *testing.T) {
		got, err := layout.TestFile("pkg/mod.py")
		require.NoError(t, err)
		assert.Equal(t, "pkg/test_mod.py", got)

		got, err = layout.TestFile("mod.py")
		require.NoError(t, err)
		assert.Equal(t, "test_mod.py", got)
	})

	t.Run("IsTestFile looks at the file name only", func(t *testing.T) {
		assert.True(t, layout.IsTestFile("pkg/test_mod.py"))
		assert.True(t, layout.IsTestFile("test_pkg/test_mod.py"))
		assert.False(t, layout.IsTestFile("test_pkg/mod.py"))
		assert.False(t, layout.IsTestFile("pkg/mod.py"))
	})

	t.Run("SourceCandidates returns one candidate", func(t *testing.T) {
		got, err := layout.SourceCandidates("pkg/test_mod.py")
		require.NoError(t, err)
		assert.Equal(t, []string{"pkg/mod.py"}, got)
	})

	t.Run("SourceCandidates rejects unprefixed files", func(t *testing.T) {
		_, err := layout.SourceCandidates("pkg/mod.py")
		require.ErrorIs(t, err, ErrNotATestFile)
	})
}

func TestFlatLayout(t *testing.T) {
	layout := newTestLayout(t, m.LayoutFlat, "")

	t.Run("TestFile flattens the module path", func(t *testing.T) {
		got, err := layout.TestFile("a/b.py")
		require.NoError(t, err)
		assert.Equal(t, "tests/test_a_b.py", got)

		got, err = layout.TestFile("a/b/__init__.py")
		require.NoError(t, err)
		assert.Equal(t, "tests/test_a_b.py", got)
	})

	t.Run("SourceCandidates splits the flattened name", func(t *testing.T) {
		got, err := layout.SourceCandidates("tests/test_a_b.py")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/b.py", "a/b/__init__.py"}, got)
	})

	t.Run("nested modules come back", func(t *testing.T) {
		test, err := layout.TestFile("shop/cart/item.py")
		require.NoError(t, err)

		got, err := layout.SourceCandidates(test)
		require.NoError(t, err)
		assert.Contains(t, got, "shop/cart/item.py")
	})

	t.Run("bare prefix is not a test", func(t *testing.T) {
		_, err := layout.SourceCandidates("tests/test_.py")
		require.ErrorIs(t, err, ErrNotATestFile)
	})

	t.Run("single module name", func(t *testing.T) {
		got, err := layout.SourceCandidates("tests/test_mod.py")
		require.NoError(t, err)
		assert.Equal(t, []string{"mod.py", "mod/__init__.py"}, got)
	})

	t.Run("nested test files are rejected", func(t *testing.T) {
		_, err := layout.SourceCandidates("tests/sub/test_a.py")
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("files outside the test root are rejected", func(t *testing.T) {
		_, err := layout.SourceCandidates("other/test_a.py")
		require.ErrorIs(t, err, ErrNotUnderTestRoot)

		_, err = layout.SourceCandidates("tests_old/test_a.py")
		require.ErrorIs(t, err, ErrNotUnderTestRoot)
	})

	t.Run("IsTestFile", func(t *testing.T) {
		assert.True(t, layout.IsTestFile("tests/test_a_b.py"))
		assert.False(t, layout.IsTestFile("tests/sub/test_a.py"), "deeper than one level")
		assert.False(t, layout.IsTestFile("tests/a.py"), "missing prefix")
		assert.False(t, layout.IsTestFile("src/test_a.py"), "outside the test root")
		assert.False(t, layout.IsTestFile("tests/__init__.py"))
	})
}

func TestFlatLayout_WithSourceRoot(t *testing.T) {
	layout := newTestLayout(t, m.LayoutFlat, "src")

	got, err := layout.TestFile("src/a/b.py")
	require.NoError(t, err)
	assert.Equal(t, "tests/test_a_b.py", got)

	_, err = layout.TestFile("lib/a.py")
	require.ErrorIs(t, err, ErrNotUnderSourceRoot)

	candidates, err := layout.SourceCandidates("tests/test_a_b.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a/b.py", "src/a/b/__init__.py"}, candidates)
}

func TestFollowHierarchyLayout(t *testing.T) {
	layout := newTestLayout(t, m.LayoutFollowHierarchy, "")

	t.Run("TestFile prefixes every component", func(t *testing.T) {
		got, err := layout.TestFile("pkg/sub/mod.py")
		require.NoError(t, err)
		assert.Equal(t, "tests/test_pkg/test_sub/test_mod.py", got)

		got, err = layout.TestFile("pkg/__init__.py")
		require.NoError(t, err)
		assert.Equal(t, "tests/test_pkg.py", got)
	})

	t.Run("IsTestFile requires every component to be prefixed", func(t *testing.T) {
		assert.True(t, layout.IsTestFile("tests/test_pkg/test_mod.py"))
		assert.False(t, layout.IsTestFile("tests/pkg/test_mod.py"))
		assert.False(t, layout.IsTestFile("tests/test_pkg/mod.py"))
		assert.False(t, layout.IsTestFile("test_pkg/test_mod.py"), "outside the test root")
	})

	t.Run("SourceCandidates strips every component", func(t *testing.T) {
		got, err := layout.SourceCandidates("tests/test_pkg/test_mod.py")
		require.NoError(t, err)
		assert.Equal(t, []string{"pkg/mod.py", "pkg/mod/__init__.py"}, got)
	})

	t.Run("SourceCandidates outside the test root", func(t *testing.T) {
		_, err := layout.SourceCandidates("pkg/test_mod.py")
		require.ErrorIs(t, err, ErrNotUnderTestRoot)
	})
}

func TestFollowHierarchyLayout_WithSourceRoot(t *testing.T) {
	layout := newTestLayout(t, m.LayoutFollowHierarchy, "src/app")

	got, err := layout.TestFile("src/app/pkg/mod.py")
	require.NoError(t, err)
	assert.Equal(t, "tests/test_pkg/test_mod.py", got)

	_, err = layout.TestFile("src/other/mod.py")
	require.ErrorIs(t, err, ErrNotUnderSourceRoot)

	candidates, err := layout.SourceCandidates("tests/test_pkg/test_mod.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app/pkg/mod.py", "src/app/pkg/mod/__init__.py"}, candidates)
}

func TestNoseLayout(t *testing.T) {
	layout := newTestLayout(t, m.LayoutNose, "")

	t.Run("TestFile prefixes the file name only", func(t *testing.T) {
		got, err := layout.TestFile("pkg/sub/mod.py")
		require.NoError(t, err)
		assert.Equal(t, "tests/pkg/sub/test_mod.py", got)
	})

	t.Run("IsTestFile accepts unprefixed directories", func(t *testing.T) {
		assert.True(t, layout.IsTestFile("tests/pkg/test_mod.py"))
		assert.True(t, layout.IsTestFile("tests/test_pkg/test_mod.py"))
		assert.False(t, layout.IsTestFile("tests/pkg/mod.py"))
		assert.False(t, layout.IsTestFile("pkg/test_mod.py"))
	})

	t.Run("SourceCandidates passes directories through", func(t *testing.T) {
		got, err := layout.SourceCandidates("tests/pkg/sub/test_mod.py")
		require.NoError(t, err)
		assert.Equal(t, []string{"pkg/sub/mod.py", "pkg/sub/mod/__init__.py"}, got)
	})

	t.Run("SourceCandidates outside the test root", func(t *testing.T) {
		_, err := layout.SourceCandidates("pkg/test_mod.py")
		require.ErrorIs(t, err, ErrNotUnderTestRoot)
	})
}

func TestLayouts_ForwardErrors(t *testing.T) {
	for _, kind := range []m.LayoutKind{m.LayoutFlat, m.LayoutFollowHierarchy, m.LayoutNose} {
		t.Run(string(kind), func(t *testing.T) {
			layout := newTestLayout(t, kind, "src")

			_, err := layout.TestFile("lib/mod.py")
			require.ErrorIs(t, err, ErrNotUnderSourceRoot)

			_, err = layout.TestFile("src/__init__.py")
			require.ErrorIs(t, err, ErrNoModuleName)
		})
	}
}

// sourceSamples are sources none of whose components start with the test
// prefix or contain an underscore, valid for every layout.
var sourceSamples = []string{
	"mod.py",
	"pkg/mod.py",
	"pkg/sub/mod.py",
	"pkg/__init__.py",
	"pkg/sub/__init__.py",
	"deep/er/still/module.py",
}

func TestLayouts_RoundTrip(t *testing.T) {
	for _, kind := range m.LayoutKinds() {
		for _, sourceRoot := range []string{"", "src"} {
			t.Run(string(kind)+"/"+sourceRoot, func(t *testing.T) {
				layout := newTestLayout(t, kind, sourceRoot)

				for _, sample := range sourceSamples {
					if kind == m.LayoutSideBySide && strings.HasSuffix(sample, PackageMarker) {
						// side-by-side tests a package as a sibling module file
						continue
					}

					source := sample
					if sourceRoot != "" && kind != m.LayoutSideBySide {
						source = sourceRoot + "/" + sample
					}

					test, err := layout.TestFile(source)
					require.NoError(t, err, source)

					candidates, err := layout.SourceCandidates(test)
					require.NoError(t, err, test)
					assert.Contains(t, candidates, source, "round trip of %s via %s", source, test)
				}
			})
		}
	}
}

func TestLayouts_BarePrefixIsNotATest(t *testing.T) {
	tests := []struct {
		kind m.LayoutKind
		rel  string
	}{
		{m.LayoutSideBySide, "pkg/test_.py"},
		{m.LayoutFlat, "tests/test_.py"},
		{m.LayoutFollowHierarchy, "tests/test_.py"},
		{m.LayoutFollowHierarchy, "tests/test_pkg/test_.py"},
		{m.LayoutNose, "tests/pkg/test_.py"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.rel, func(t *testing.T) {
			layout := newTestLayout(t, tt.kind, "")

			candidates, err := layout.SourceCandidates(tt.rel)
			require.ErrorIs(t, err, ErrNotATestFile)
			assert.Empty(t, candidates)
		})
	}
}

func TestLayouts_IsTestFileOfTestFile(t *testing.T) {
	for _, kind := range m.LayoutKinds() {
		t.Run(string(kind), func(t *testing.T) {
			layout := newTestLayout(t, kind, "")

			for _, source := range sourceSamples {
				test, err := layout.TestFile(source)
				require.NoError(t, err, source)

				assert.True(t, layout.IsTestFile(test), "IsTestFile(TestFile(%s)) = false for %s", source, test)
				assert.False(t, layout.IsTestFile(source), "IsTestFile(%s) = true for a source", source)
			}
		})
	}
}

func TestLayouts_FollowHierarchyStricterThanNose(t *testing.T) {
	follow := newTestLayout(t, m.LayoutFollowHierarchy, "")
	nose := newTestLayout(t, m.LayoutNose, "")

	assert.True(t, follow.IsTestFile("tests/test_pkg/test_mod.py"))
	assert.False(t, follow.IsTestFile("tests/pkg/test_mod.py"))
	assert.True(t, nose.IsTestFile("tests/pkg/test_mod.py"))
}

func TestLayouts_CustomRootsAndPrefix(t *testing.T) {
	settings := m.DefaultSettings()
	settings.Layout = m.LayoutNose
	settings.TestRoot = "tests/unit"
	settings.TestPrefix = "check_"

	layout, err := NewLayout(settings)
	require.NoError(t, err)

	got, err := layout.TestFile("pkg/mod.py")
	require.NoError(t, err)
	assert.Equal(t, "tests/unit/pkg/check_mod.py", got)

	assert.True(t, layout.IsTestFile("tests/unit/pkg/check_mod.py"))
	assert.False(t, layout.IsTestFile("tests/pkg/check_mod.py"))

	candidates, err := layout.SourceCandidates("tests/unit/pkg/check_mod.py")
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/mod.py", "pkg/mod/__init__.py"}, candidates)
}
