// SPDX-License-Identifier: MPL-2.0

// Package embedded models embedded resources as a navigable tree of
// directories and files.
//
// Flat, dotted resource identifiers (e.g. "MyAssembly.Assets.Logo.png") are
// parsed into directory paths and file names, built into an immutable tree,
// and optionally merged across multiple sources with latest-wins precedence.
// Trees are constructed once and never mutated afterwards, so all reads are
// safe from any number of goroutines.
package embedded

// Directory is one node of a resource tree. It owns its subdirectories and
// files; the parent link is a non-owning back-reference used for navigation
// only. Directories are immutable once the tree that contains them is built.
type Directory struct {
	name           string
	parent         *Directory
	subdirectories *NamedCollection[*Directory]
	files          *NamedCollection[*File]
}

// Name returns the directory name. It is empty only for the synthetic root
// of a merged tree.
func (d *Directory) Name() string { return d.name }

// Parent returns the directory owning this one, or nil for the root.
func (d *Directory) Parent() *Directory { return d.parent }

// Subdirectories returns the child directories, indexed by name and ordered
// case-insensitively.
func (d *Directory) Subdirectories() *NamedCollection[*Directory] { return d.subdirectories }

// Files returns the directory's own files, indexed by name and ordered
// case-insensitively.
func (d *Directory) Files() *NamedCollection[*File] { return d.files }

// Path returns the directory's slash-joined path relative to (and excluding)
// the tree root. The root's own path is empty.
func (d *Directory) Path() string {
	segments := d.pathSegments()
	if len(segments) == 0 {
		return ""
	}
	path := segments[0]
	for _, segment := range segments[1:] {
		path += "/" + segment
	}
	return path
}

// pathSegments collects the directory names from the root (exclusive) down
// to the receiver (inclusive).
func (d *Directory) pathSegments() []string {
	var segments []string
	for node := d; node != nil && node.parent != nil; node = node.parent {
		segments = append(segments, node.name)
	}
	// Collected bottom-up; reverse into root-first order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}
