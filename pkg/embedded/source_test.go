// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"slices"
	"testing"
	"testing/fstest"
)

func TestFSSource_IdentifierGeneration(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md":        {Data: []byte("top")},
		"assets/logo.png":  {Data: []byte("logo")},
		"assets/fonts/a.b": {Data: []byte("font")},
	}

	source := NewFSSource("myapp", fsys)
	resources, err := source.Resources()
	if err != nil {
		t.Fatalf("Resources() error = %v", err)
	}

	var ids []string
	for _, resource := range resources {
		ids = append(ids, resource.ID)
	}
	slices.Sort(ids)
	want := []string{
		"myapp.assets.fonts.a.b",
		"myapp.assets.logo.png",
		"myapp.readme.md",
	}
	if !slices.Equal(ids, want) {
		t.Errorf("identifiers = %v, want %v", ids, want)
	}
}

func TestFSSource_SeparatorOverride(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/File.With.Dots.txt": {Data: []byte("dotted")},
	}

	source := NewFSSource("myapp", fsys, WithSeparator('/'))
	if sep, ok := source.SeparatorOverride(); !ok || sep != '/' {
		t.Fatalf("SeparatorOverride() = (%q, %t), want (/, true)", sep, ok)
	}

	tree, err := NewTree(source)
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	assets, err := tree.Subdirectories().Get("assets")
	if err != nil {
		t.Fatalf("Get(assets) error = %v", err)
	}
	file, err := assets.Files().Get("File.With.Dots.txt")
	if err != nil {
		t.Fatalf("Get(File.With.Dots.txt) error = %v", err)
	}
	if got := readFile(t, file); got != "dotted" {
		t.Errorf("content = %q, want dotted", got)
	}
}

func TestFSSource_TreeReadsThroughToFS(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/index.html": {Data: []byte("<html/>")},
	}

	tree, err := NewTree(NewFSSource("site", fsys))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	// The dotted default strategy turns "docs/index.html" into
	// "site.docs.index.html": one directory, one file.
	docs, err := tree.Subdirectories().Get("docs")
	if err != nil {
		t.Fatalf("Get(docs) error = %v", err)
	}
	file, err := docs.Files().Get("index.html")
	if err != nil {
		t.Fatalf("Get(index.html) error = %v", err)
	}
	if got := readFile(t, file); got != "<html/>" {
		t.Errorf("content = %q, want <html/>", got)
	}
}

func TestStaticSource_ResourcesSorted(t *testing.T) {
	source := NewStaticSource("App", map[string][]byte{
		"App.b.txt": []byte("b"),
		"App.a.txt": []byte("a"),
		"App.c.txt": []byte("c"),
	})

	resources, err := source.Resources()
	if err != nil {
		t.Fatalf("Resources() error = %v", err)
	}
	var ids []string
	for _, resource := range resources {
		ids = append(ids, resource.ID)
	}
	want := []string{"App.a.txt", "App.b.txt", "App.c.txt"}
	if !slices.Equal(ids, want) {
		t.Errorf("identifiers = %v, want %v", ids, want)
	}
}
