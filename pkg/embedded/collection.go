// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"iter"
	"slices"
	"strings"
)

// NamedCollection is an ordered, name-indexed container of sibling items.
// Items are kept in case-insensitive ordinal name order and names are unique
// ignoring case. The collection is frozen at construction and safe for
// unsynchronized concurrent reads.
type NamedCollection[T any] struct {
	items  []T
	nameOf func(T) string
}

// NewNamedCollection builds a NamedCollection from items, using nameOf to
// extract each item's name. Items are sorted by case-insensitive ordinal
// comparison. Two items whose names differ only by case fail construction
// with a DuplicateNameError.
func NewNamedCollection[T any](items []T, nameOf func(T) string) (*NamedCollection[T], error) {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareFold(nameOf(a), nameOf(b))
	})
	for i := 1; i < len(sorted); i++ {
		if compareFold(nameOf(sorted[i-1]), nameOf(sorted[i])) == 0 {
			return nil, &DuplicateNameError{Name: nameOf(sorted[i])}
		}
	}
	return &NamedCollection[T]{items: sorted, nameOf: nameOf}, nil
}

// Len returns the number of items in the collection.
func (c *NamedCollection[T]) Len() int { return len(c.items) }

// At returns the item at position i in sorted-by-name order. It fails with
// an IndexOutOfRangeError when i falls outside [0, Len).
func (c *NamedCollection[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, &IndexOutOfRangeError{Index: i, Len: len(c.items)}
	}
	return c.items[i], nil
}

// Get returns the item with the given name, compared case-insensitively.
// It fails with a NotFoundError when no item matches.
func (c *NamedCollection[T]) Get(name string) (T, error) {
	if item, ok := c.TryGet(name); ok {
		return item, nil
	}
	var zero T
	return zero, &NotFoundError{Name: name}
}

// TryGet returns the item with the given name and whether it was found.
func (c *NamedCollection[T]) TryGet(name string) (T, bool) {
	i, ok := slices.BinarySearchFunc(c.items, name, func(item T, target string) int {
		return compareFold(c.nameOf(item), target)
	})
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Contains reports whether an item with the given name exists.
func (c *NamedCollection[T]) Contains(name string) bool {
	_, ok := c.TryGet(name)
	return ok
}

// All returns the items in sorted-by-name order.
func (c *NamedCollection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range c.items {
			if !yield(item) {
				return
			}
		}
	}
}

// compareFold compares two names with case-insensitive ordinal semantics.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
