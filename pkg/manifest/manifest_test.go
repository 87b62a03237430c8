// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeManifestDir lays out a manifest plus source directories on disk.
func writeManifestDir(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(manifest), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", full, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeManifestDir(t, `sources: [
	{name: "base", path: "base"},
	{name: "overlay", path: "overlay", separator: "/"},
]
`, map[string]string{
		"base/readme.md":    "base",
		"overlay/readme.md": "overlay",
	})

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.Sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2", len(m.Sources))
	}
	if m.Sources[0].Name != "base" || m.Sources[1].Separator != "/" {
		t.Errorf("Sources = %+v, want base first and overlay with / separator", m.Sources)
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Load() succeeded, want error for missing manifest")
	}
}

func TestParseBytes_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantIn   string
	}{
		{
			name:     "empty source name",
			manifest: `sources: [{name: "", path: "x"}]`,
			wantIn:   "name",
		},
		{
			name:     "missing path",
			manifest: `sources: [{name: "x"}]`,
			wantIn:   "path",
		},
		{
			name:     "multi-character separator",
			manifest: `sources: [{name: "x", path: "x", separator: "::"}]`,
			wantIn:   "single character",
		},
		{
			name: "source names collide ignoring case",
			manifest: `sources: [
	{name: "Base", path: "a"},
	{name: "base", path: "b"},
]`,
			wantIn: "collides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.manifest), "resources.cue")
			if err == nil {
				t.Fatal("ParseBytes() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error = %q, want substring %q", err, tt.wantIn)
			}
		})
	}
}

func TestManifest_Merge(t *testing.T) {
	dir := writeManifestDir(t, `sources: [
	{name: "base", path: "base"},
	{name: "overlay", path: "overlay"},
]
`, map[string]string{
		"base/docs/index.html":    "from base",
		"base/readme.md":          "base readme",
		"overlay/docs/index.html": "from overlay",
	})

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tree, err := m.Merge()
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	docs, err := tree.Subdirectories().Get("docs")
	if err != nil {
		t.Fatalf("Get(docs) error = %v", err)
	}
	index, err := docs.Files().Get("index.html")
	if err != nil {
		t.Fatalf("Get(index.html) error = %v", err)
	}
	reader, err := index.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reader.Close()
	content := make([]byte, 64)
	n, _ := reader.Read(content)
	if got := string(content[:n]); got != "from overlay" {
		t.Errorf("index.html content = %q, want from overlay", got)
	}

	if _, err := tree.Files().Get("readme.md"); err != nil {
		t.Errorf("Get(readme.md) error = %v", err)
	}
}

func TestManifest_DefaultSeparatorAppliesToUndeclaredSources(t *testing.T) {
	dir := writeManifestDir(t, `sources: [{name: "assets", path: "assets"}]
`, map[string]string{
		"assets/File.With.Dots.txt": "dotted",
	})

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m.DefaultSeparator = "/"

	tree, err := m.Merge()
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	// With '/' the dotted file name stays whole instead of splitting into
	// nested directories.
	if _, err := tree.Files().Get("File.With.Dots.txt"); err != nil {
		t.Errorf("Get(File.With.Dots.txt) error = %v", err)
	}
}

func TestManifest_MergeMissingSourceDir(t *testing.T) {
	dir := writeManifestDir(t, `sources: [{name: "ghost", path: "missing"}]
`, nil)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := m.Merge(); err == nil {
		t.Fatal("Merge() succeeded, want error for missing source directory")
	}
}
