// SPDX-License-Identifier: MPL-2.0

// Package manifest loads resources.cue manifests describing the resource
// sources to browse and the order in which they merge.
package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Andrei15193/EmbeddedResourceBrowser/pkg/cueutil"
	"github.com/Andrei15193/EmbeddedResourceBrowser/pkg/embedded"
)

// FileName is the manifest file name looked up inside a directory.
const FileName = "resources.cue"

//go:embed manifest_schema.cue
var manifestSchema string

type (
	// Manifest is a parsed resources.cue file. Source order is merge
	// precedence: later sources override earlier ones on conflicting
	// relative paths.
	Manifest struct {
		Sources []SourceSpec `json:"sources"`

		// FilePath is the path the manifest was loaded from.
		FilePath string `json:"-"`

		// DefaultSeparator, when non-empty, applies to sources that do
		// not declare a separator of their own. Callers set it from
		// configuration before materializing sources.
		DefaultSeparator string `json:"-"`
	}

	// SourceSpec declares one resource source.
	SourceSpec struct {
		// Name is the source's stable name, used as identifier prefix.
		Name string `json:"name"`
		// Path is the source root directory, relative to the manifest.
		Path string `json:"path"`
		// Separator optionally overrides the identifier separator.
		Separator string `json:"separator,omitempty"`
	}
)

// Load reads and parses the resources.cue manifest inside dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest at %s: %w", path, err)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses manifest content against the embedded schema and
// validates it.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	result, err := cueutil.ParseAndDecodeString[Manifest](
		manifestSchema,
		data,
		"#Manifest",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	m := result.Value
	m.FilePath = path
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// validate enforces the constraints the CUE schema cannot express: single
// character separators and source names unique ignoring case.
func (m *Manifest) validate() error {
	seen := make(map[string]string, len(m.Sources))
	for i, source := range m.Sources {
		if source.Separator != "" && utf8.RuneCountInString(source.Separator) != 1 {
			return fmt.Errorf("%s: sources[%d].separator: %q is not a single character",
				m.FilePath, i, source.Separator)
		}
		folded := strings.ToLower(source.Name)
		if previous, ok := seen[folded]; ok {
			return fmt.Errorf("%s: sources[%d].name: %q collides with %q ignoring case",
				m.FilePath, i, source.Name, previous)
		}
		seen[folded] = source.Name
	}
	return nil
}

// ResourceSources materializes the manifest's sources, resolving relative
// source paths against the manifest's own directory.
func (m *Manifest) ResourceSources() ([]embedded.Source, error) {
	baseDir := filepath.Dir(m.FilePath)
	sources := make([]embedded.Source, len(m.Sources))
	for i, spec := range m.Sources {
		root := spec.Path
		if !filepath.IsAbs(root) {
			root = filepath.Join(baseDir, root)
		}
		if info, err := os.Stat(root); err != nil {
			return nil, fmt.Errorf("source %q: %w", spec.Name, err)
		} else if !info.IsDir() {
			return nil, fmt.Errorf("source %q: %s is not a directory", spec.Name, root)
		}

		var opts []embedded.SourceOption
		if sep := spec.Separator; sep != "" {
			separator, _ := utf8.DecodeRuneInString(sep)
			opts = append(opts, embedded.WithSeparator(separator))
		} else if m.DefaultSeparator != "" && m.DefaultSeparator != "." {
			separator, _ := utf8.DecodeRuneInString(m.DefaultSeparator)
			opts = append(opts, embedded.WithSeparator(separator))
		}
		sources[i] = embedded.NewFSSource(spec.Name, os.DirFS(root), opts...)
	}
	return sources, nil
}

// Merge builds the merged resource tree of all manifest sources, later
// sources overriding earlier ones.
func (m *Manifest) Merge() (*embedded.Directory, error) {
	sources, err := m.ResourceSources()
	if err != nil {
		return nil, err
	}
	return embedded.Merge(sources...)
}
