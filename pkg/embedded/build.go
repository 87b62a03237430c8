// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// parsedResource is one identifier split into its tree coordinates, carrying
// the locator needed to open the content later.
type parsedResource struct {
	segments   []string
	name       string
	sourceName string
	identifier string
	open       func() (io.ReadCloser, error)
}

// strategyFor resolves the parse strategy for a source: an explicitly
// configured separator when the source provides one, the default dotted
// strategy otherwise.
func strategyFor(source Source) ParseStrategy {
	if provider, ok := source.(SeparatorProvider); ok {
		if separator, ok := provider.SeparatorOverride(); ok {
			return SeparatorStrategy(source.Name(), separator)
		}
	}
	return DefaultStrategy(source.Name())
}

// NewTree builds the resource tree of a single source, rooted at the
// source's name. The build is atomic: any malformed identifier or sibling
// name collision fails the whole call and no partial tree is returned.
func NewTree(source Source) (*Directory, error) {
	if source == nil {
		return nil, &InvalidArgumentError{Argument: "source", Reason: "must not be nil"}
	}
	resources, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	return buildDirectory(source.Name(), nil, 0, resources)
}

// parseSource enumerates and parses every identifier of one source.
func parseSource(source Source) ([]parsedResource, error) {
	strategy := strategyFor(source)
	enumerated, err := source.Resources()
	if err != nil {
		return nil, err
	}
	parsed := make([]parsedResource, len(enumerated))
	for i, resource := range enumerated {
		segments, name, err := parseIdentifier(resource.ID, strategy)
		if err != nil {
			return nil, err
		}
		parsed[i] = parsedResource{
			segments:   segments,
			name:       name,
			sourceName: source.Name(),
			identifier: resource.ID,
			open:       resource.Open,
		}
	}
	return parsed, nil
}

// buildDirectory recursively partitions resources by depth: resources whose
// path is exhausted become files of the current directory, the rest are
// grouped by their next segment into child directories. Sibling collisions
// that differ only by case, between files or between directories, surface
// as DuplicateNameError from collection construction.
func buildDirectory(name string, parent *Directory, depth int, resources []parsedResource) (*Directory, error) {
	dir := &Directory{name: name, parent: parent}

	var files []*File
	groups := make(map[string][]parsedResource)
	for _, resource := range resources {
		if len(resource.segments) == depth {
			files = append(files, &File{
				name:       resource.name,
				parent:     dir,
				sourceName: resource.sourceName,
				identifier: resource.identifier,
				open:       resource.open,
			})
		} else {
			segment := resource.segments[depth]
			groups[segment] = append(groups[segment], resource)
		}
	}

	segments := maps.Keys(groups)
	slices.Sort(segments)
	subdirectories := make([]*Directory, 0, len(groups))
	for _, segment := range segments {
		child, err := buildDirectory(segment, dir, depth+1, groups[segment])
		if err != nil {
			return nil, err
		}
		subdirectories = append(subdirectories, child)
	}

	var err error
	dir.subdirectories, err = NewNamedCollection(subdirectories, (*Directory).Name)
	if err != nil {
		return nil, err
	}
	dir.files, err = NewNamedCollection(files, (*File).Name)
	if err != nil {
		return nil, err
	}
	return dir, nil
}
