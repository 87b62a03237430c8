// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
)

// Merge combines the resource trees of the given sources into one tree
// rooted at a nameless directory. Sources have no per-source top level in
// the merged tree; their relative paths interleave directly. When two
// sources contribute the same relative path (compared case-insensitively),
// the source listed last wins. Merge is a pure function of the ordered
// source list.
//
// A nil source entry fails with an InvalidArgumentError: a missing source is
// always rejected, never silently skipped.
func Merge(sources ...Source) (*Directory, error) {
	winners := make(map[string]parsedResource)
	for i, source := range sources {
		if source == nil {
			return nil, &InvalidArgumentError{
				Argument: fmt.Sprintf("sources[%d]", i),
				Reason:   "must not be nil",
			}
		}
		tree, err := NewTree(source)
		if err != nil {
			return nil, err
		}
		// Later sources overwrite earlier entries under the same
		// case-insensitive relative path.
		for file := range tree.AllFiles() {
			segments := file.parent.pathSegments()
			winners[mergeKey(segments, file.name)] = parsedResource{
				segments:   segments,
				name:       file.name,
				sourceName: file.sourceName,
				identifier: file.identifier,
				open:       file.open,
			}
		}
	}
	return buildDirectory("", nil, 0, maps.Values(winners))
}

// mergeKey folds a relative path into its case-insensitive identity. The
// segments join on NUL, which cannot occur inside a name, so a name that
// contains a path-like character never aliases a genuinely nested path.
func mergeKey(segments []string, name string) string {
	var key strings.Builder
	for _, segment := range segments {
		key.WriteString(strings.ToLower(segment))
		key.WriteByte(0)
	}
	key.WriteString(strings.ToLower(name))
	return key.String()
}
