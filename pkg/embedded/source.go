// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
)

type (
	// Resource is one flat identifier enumerated by a Source, paired with
	// an opener for its content. The identifier includes the source prefix.
	Resource struct {
		// ID is the full flat identifier, e.g. "MyAssembly.Assets.Logo.png".
		ID string
		// Open opens a fresh reader over the resource content.
		Open func() (io.ReadCloser, error)
	}

	// Source is one independent provider of embedded resources. A source
	// exposes a stable name, used as the default identifier prefix, and an
	// enumeration of its resources.
	Source interface {
		// Name returns the source's stable name.
		Name() string
		// Resources enumerates the source's flat identifiers with openers.
		Resources() ([]Resource, error)
	}

	// SeparatorProvider is implemented by sources that configure an
	// explicit identifier separator instead of the default '.'.
	SeparatorProvider interface {
		// SeparatorOverride returns the configured separator and whether
		// one is configured.
		SeparatorOverride() (rune, bool)
	}

	// SourceOption configures a source constructor.
	SourceOption func(*sourceOptions)

	sourceOptions struct {
		separator    rune
		hasSeparator bool
	}
)

// WithSeparator configures an explicit identifier separator for a source,
// for layouts whose file names legitimately contain '.'.
func WithSeparator(separator rune) SourceOption {
	return func(o *sourceOptions) {
		o.separator = separator
		o.hasSeparator = true
	}
}

func applySourceOptions(opts []SourceOption) sourceOptions {
	var options sourceOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// FSSource adapts an fs.FS (such as an embed.FS) into a Source. File paths
// become flat identifiers by prefixing the source name and replacing the
// path separator with the identifier separator:
// "assets/logo.png" -> "myapp.assets.logo.png".
type FSSource struct {
	name string
	fsys fs.FS
	opts sourceOptions
}

// NewFSSource wraps fsys as a source with the given stable name.
func NewFSSource(name string, fsys fs.FS, opts ...SourceOption) *FSSource {
	return &FSSource{name: name, fsys: fsys, opts: applySourceOptions(opts)}
}

// Name returns the source's stable name.
func (s *FSSource) Name() string { return s.name }

// SeparatorOverride returns the configured separator, if any.
func (s *FSSource) SeparatorOverride() (rune, bool) {
	return s.opts.separator, s.opts.hasSeparator
}

// Resources walks the file system and returns one resource per file, in
// lexical walk order.
func (s *FSSource) Resources() ([]Resource, error) {
	separator := DefaultSeparator
	if sep, ok := s.SeparatorOverride(); ok {
		separator = sep
	}
	var resources []Resource
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		resources = append(resources, Resource{
			ID:   s.name + string(separator) + strings.ReplaceAll(path, "/", string(separator)),
			Open: func() (io.ReadCloser, error) { return s.fsys.Open(path) },
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerating resources of %s: %w", s.name, err)
	}
	return resources, nil
}

// StaticSource is an in-memory Source backed by a map of full identifiers
// to content. It is handy in tests and for callers with synthetic content.
type StaticSource struct {
	name      string
	resources map[string][]byte
	opts      sourceOptions
}

// NewStaticSource builds a source from full identifiers mapped to content.
func NewStaticSource(name string, resources map[string][]byte, opts ...SourceOption) *StaticSource {
	return &StaticSource{name: name, resources: resources, opts: applySourceOptions(opts)}
}

// Name returns the source's stable name.
func (s *StaticSource) Name() string { return s.name }

// SeparatorOverride returns the configured separator, if any.
func (s *StaticSource) SeparatorOverride() (rune, bool) {
	return s.opts.separator, s.opts.hasSeparator
}

// Resources returns the resources in identifier order.
func (s *StaticSource) Resources() ([]Resource, error) {
	ids := make([]string, 0, len(s.resources))
	for id := range s.resources {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	resources := make([]Resource, len(ids))
	for i, id := range ids {
		content := s.resources[id]
		resources[i] = Resource{
			ID:   id,
			Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(content)), nil },
		}
	}
	return resources, nil
}
