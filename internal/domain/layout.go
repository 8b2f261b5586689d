package domain

import (
	"fmt"
	"strings"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// Layout maps between source files and test files under one convention. All
// paths are slash-separated and relative to the project root.
type Layout interface {
	Kind() m.LayoutKind

	// IsTestFile reports whether rel is a test file under this layout.
	IsTestFile(rel string) bool

	// TestFile returns the test file path for the source file rel.
	TestFile(rel string) (string, error)

	// SourceCandidates returns the possible source files for the test file
	// rel, in the order they should be tried.
	SourceCandidates(rel string) ([]string, error)
}

// prefixScope selects which module parts carry the test prefix.
type prefixScope int

const (
	prefixLast prefixScope = iota
	prefixEvery
	prefixFlattened
)

// policy describes a layout; one engine interprets all four.
type policy struct {
	kind m.LayoutKind

	// scoped layouts keep sources under SourceRoot and tests under TestRoot.
	scoped bool

	scope prefixScope

	// stripEvery strips the prefix from every part on the way back instead
	// of requiring and stripping it on the last part only.
	stripEvery bool

	// packageCandidate also offers the package marker reassembly.
	packageCandidate bool
}

var policies = map[m.LayoutKind]policy{
	m.LayoutSideBySide: {
		kind:  m.LayoutSideBySide,
		scope: prefixLast,
	},
	m.LayoutFlat: {
		kind:             m.LayoutFlat,
		scoped:           true,
		scope:            prefixFlattened,
		stripEvery:       true,
		packageCandidate: true,
	},
	m.LayoutFollowHierarchy: {
		kind:             m.LayoutFollowHierarchy,
		scoped:           true,
		scope:            prefixEvery,
		stripEvery:       true,
		packageCandidate: true,
	},
	m.LayoutNose: {
		kind:             m.LayoutNose,
		scoped:           true,
		scope:            prefixLast,
		stripEvery:       true,
		packageCandidate: true,
	},
}

// NewLayout returns the layout named by settings.Layout.
func NewLayout(settings m.Settings) (Layout, error) {
	p, ok := policies[settings.Layout]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayoutKind, settings.Layout)
	}

	return &policyLayout{
		policy:     p,
		sourceRoot: rootParts(settings.SourceRoot),
		testRoot:   rootParts(settings.TestRoot),
		prefix:     settings.TestPrefix,
	}, nil
}

type policyLayout struct {
	policy
	sourceRoot []string
	testRoot   []string
	prefix     string
}

func (l *policyLayout) Kind() m.LayoutKind {
	return l.kind
}

func (l *policyLayout) IsTestFile(rel string) bool {
	if l.scoped {
		rest, ok := under(strings.Join(l.testRoot, "/"), rel)
		if !ok {
			return false
		}

		rel = rest
	}

	parts := BreakDown(rel)
	if len(parts) == 0 {
		return false
	}

	switch l.scope {
	case prefixFlattened:
		return len(parts) == 1 && strings.HasPrefix(parts[0], l.prefix)
	case prefixEvery:
		for _, part := range parts {
			if !strings.HasPrefix(part, l.prefix) {
				return false
			}
		}

		return true
	default:
		return strings.HasPrefix(parts[len(parts)-1], l.prefix)
	}
}

func (l *policyLayout) TestFile(rel string) (string, error) {
	if l.scoped {
		rest, ok := under(strings.Join(l.sourceRoot, "/"), rel)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotUnderSourceRoot, rel)
		}

		rel = rest
	}

	parts := BreakDown(rel)
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoModuleName, rel)
	}

	switch l.scope {
	case prefixFlattened:
		parts = []string{l.prefix + strings.Join(parts, "_")}
	case prefixEvery:
		for i := range parts {
			parts[i] = l.prefix + parts[i]
		}
	default:
		parts[len(parts)-1] = l.prefix + parts[len(parts)-1]
	}

	if l.scoped {
		parts = append(append([]string{}, l.testRoot...), parts...)
	}

	return GlueParts(parts, false), nil
}

func (l *policyLayout) SourceCandidates(rel string) ([]string, error) {
	if l.scoped {
		rest, ok := under(strings.Join(l.testRoot, "/"), rel)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotUnderTestRoot, rel)
		}

		rel = rest
	}

	parts := BreakDown(rel)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoModuleName, rel)
	}

	if l.scope == prefixFlattened {
		return l.flatCandidates(parts, rel)
	}

	if l.stripEvery {
		for i := range parts {
			parts[i] = StripPrefix(parts[i], l.prefix)
		}
	} else {
		last := len(parts) - 1
		if !strings.HasPrefix(parts[last], l.prefix) {
			return nil, fmt.Errorf("%w: %s", ErrNotATestFile, rel)
		}

		parts[last] = StripPrefix(parts[last], l.prefix)
	}

	if parts[len(parts)-1] == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotATestFile, rel)
	}

	return l.reassemble(parts), nil
}

// flatCandidates reads every underscore of the flattened name as a directory
// separator. Module names that contain underscores themselves cannot be
// recovered.
func (l *policyLayout) flatCandidates(parts []string, rel string) ([]string, error) {
	if len(parts) != 1 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDepth, rel)
	}

	name := StripPrefix(parts[0], l.prefix)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotATestFile, rel)
	}

	return l.reassemble(strings.Split(name, "_")), nil
}

func (l *policyLayout) reassemble(parts []string) []string {
	parts = l.withSourceRoot(parts)

	candidates := []string{GlueParts(parts, false)}
	if l.packageCandidate {
		candidates = append(candidates, GlueParts(parts, true))
	}

	return candidates
}

func (l *policyLayout) withSourceRoot(parts []string) []string {
	if !l.scoped {
		return parts
	}

	return append(append([]string{}, l.sourceRoot...), parts...)
}
