package domain

import (
	"path"
	"path/filepath"
	"strings"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

const (
	// SourceExt is the extension stripped from and re-appended to modules.
	SourceExt = ".py"

	// PackageMarker is the file that turns a directory into a package.
	PackageMarker = "__init__.py"
)

// StripPrefix removes prefix from the start of component when present.
func StripPrefix(component, prefix string) string {
	if prefix == "" {
		return component
	}

	return strings.TrimPrefix(component, prefix)
}

// BreakDown splits a slash-separated relative path into its module parts.
// A trailing package marker is dropped and the source extension is stripped
// from the last component.
func BreakDown(rel string) []string {
	if rel == "" {
		return nil
	}

	parts := strings.Split(rel, "/")

	last := len(parts) - 1
	switch {
	case parts[last] == PackageMarker:
		parts = parts[:last]
	case strings.HasSuffix(parts[last], SourceExt):
		parts[last] = strings.TrimSuffix(parts[last], SourceExt)
	}

	return parts
}

// GlueParts reassembles module parts into a slash-separated path, either as a
// plain module file or as the package marker inside a directory.
func GlueParts(parts []string, asPackage bool) string {
	if asPackage {
		return strings.Join(append(append([]string{}, parts...), PackageMarker), "/")
	}

	if len(parts) == 0 {
		return ""
	}

	glued := append([]string{}, parts...)
	glued[len(glued)-1] += SourceExt

	return strings.Join(glued, "/")
}

// Relatize expresses file relative to root in slash form.
func Relatize(root, file m.Path) (string, error) {
	rel, err := filepath.Rel(string(root), string(file))
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// Absolutify joins a slash-separated relative path onto root. Absolute paths
// are returned unchanged.
func Absolutify(root m.Path, rel string) m.Path {
	native := filepath.FromSlash(rel)
	if filepath.IsAbs(native) {
		return m.Path(native)
	}

	return m.Path(filepath.Join(string(root), native))
}

// under reports whether rel lies inside dir, comparing whole components, and
// returns the remainder. An empty dir contains every path.
func under(dir, rel string) (string, bool) {
	dir = strings.Trim(path.Clean("/"+filepath.ToSlash(dir)), "/")
	if dir == "" {
		return rel, true
	}

	rest, ok := strings.CutPrefix(rel, dir+"/")
	if !ok || rest == "" {
		return "", false
	}

	return rest, true
}

// rootParts splits a configured root into path components, empty for "".
func rootParts(dir string) []string {
	dir = strings.Trim(path.Clean("/"+filepath.ToSlash(dir)), "/")
	if dir == "" {
		return nil
	}

	return strings.Split(dir, "/")
}
