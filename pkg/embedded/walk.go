// SPDX-License-Identifier: MPL-2.0

package embedded

import "iter"

// AllSubdirectories returns a lazy depth-first pre-order sequence of every
// directory beneath the receiver, not including the receiver itself.
// Siblings are visited in collection sort order and the descendants of one
// sibling are exhausted before the next sibling begins. The sequence is
// restartable and safe to consume concurrently with any other reads.
func (d *Directory) AllSubdirectories() iter.Seq[*Directory] {
	return func(yield func(*Directory) bool) {
		d.walkSubdirectories(yield)
	}
}

func (d *Directory) walkSubdirectories(yield func(*Directory) bool) bool {
	for subdirectory := range d.subdirectories.All() {
		if !yield(subdirectory) {
			return false
		}
		if !subdirectory.walkSubdirectories(yield) {
			return false
		}
	}
	return true
}

// AllFiles returns a lazy sequence of the receiver's own files followed by
// the files of every subdirectory in AllSubdirectories order.
func (d *Directory) AllFiles() iter.Seq[*File] {
	return func(yield func(*File) bool) {
		for file := range d.files.All() {
			if !yield(file) {
				return
			}
		}
		for subdirectory := range d.AllSubdirectories() {
			for file := range subdirectory.files.All() {
				if !yield(file) {
					return
				}
			}
		}
	}
}
