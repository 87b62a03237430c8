// SPDX-License-Identifier: MPL-2.0

package embedded

import "io"

// File is a terminal, content-bearing node of a resource tree. It records
// where the content came from (the source name and the original flat
// identifier) but never reads it itself; Open defers entirely to the source.
type File struct {
	name       string
	parent     *Directory
	sourceName string
	identifier string
	open       func() (io.ReadCloser, error)
}

// Name returns the file name, unique ignoring case among its siblings.
func (f *File) Name() string { return f.name }

// Parent returns the directory owning this file.
func (f *File) Parent() *Directory { return f.parent }

// SourceName returns the name of the source that contributed this file.
// After a merge this is the name of the winning source.
func (f *File) SourceName() string { return f.sourceName }

// Identifier returns the original flat identifier the file was parsed from.
func (f *File) Identifier() string { return f.identifier }

// Open opens a reader over the file's content. Each call opens a fresh
// stream; the caller owns closing it.
func (f *File) Open() (io.ReadCloser, error) { return f.open() }

// Path returns the file's slash-joined path relative to (and excluding) the
// tree root, e.g. "Assets/Logo.png".
func (f *File) Path() string {
	if dir := f.parent.Path(); dir != "" {
		return dir + "/" + f.name
	}
	return f.name
}
