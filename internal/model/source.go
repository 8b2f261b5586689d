// Package model defines the plain data types shared by the pyunit packages.
package model

// Path represents a file system path.
type Path string

// LayoutKind names a convention that places test files relative to sources.
type LayoutKind string

const (
	// LayoutSideBySide keeps tests next to their sources with a prefixed name.
	LayoutSideBySide LayoutKind = "side-by-side"

	// LayoutFlat keeps every test directly under the test root, the source
	// path flattened into one file name joined with underscores.
	LayoutFlat LayoutKind = "flat"

	// LayoutFollowHierarchy mirrors the source tree under the test root and
	// prefixes every directory and the file name.
	LayoutFollowHierarchy LayoutKind = "follow-hierarchy"

	// LayoutNose mirrors the source tree under the test root and prefixes
	// only the file name.
	LayoutNose LayoutKind = "nose"
)

// LayoutKinds lists the supported layouts in display order.
func LayoutKinds() []LayoutKind {
	return []LayoutKind{LayoutSideBySide, LayoutFlat, LayoutFollowHierarchy, LayoutNose}
}

// Resolution describes how a single file maps onto its counterpart.
type Resolution struct {
	File         Path
	Root         Path
	Layout       LayoutKind
	IsTest       bool
	Counterparts []Path
	Existing     Path // first counterpart found on disk, empty when none
}
