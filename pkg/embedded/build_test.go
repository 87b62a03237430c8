// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"errors"
	"io"
	"slices"
	"testing"
)

// readFile drains a file's content for assertions.
func readFile(t *testing.T, file *File) string {
	t.Helper()
	reader, err := file.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reader.Close()
	content, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return string(content)
}

func TestNewTree_EmptySource(t *testing.T) {
	tree, err := NewTree(NewStaticSource("App", nil))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	if tree.Name() != "App" {
		t.Errorf("Name() = %q, want App", tree.Name())
	}
	if tree.Parent() != nil {
		t.Error("Parent() != nil for root")
	}
	if tree.Subdirectories().Len() != 0 {
		t.Errorf("Subdirectories().Len() = %d, want 0", tree.Subdirectories().Len())
	}
	if tree.Files().Len() != 0 {
		t.Errorf("Files().Len() = %d, want 0", tree.Files().Len())
	}
}

func TestNewTree_NilSource(t *testing.T) {
	_, err := NewTree(nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewTree(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewTree_Shape(t *testing.T) {
	tree, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App.readme.md":            []byte("top"),
		"App.Assets.logo.png":      []byte("logo"),
		"App.Assets.icon.png":      []byte("icon"),
		"App.Assets.Fonts.mono.tt": []byte("font"),
		"App.Docs.index.html":      []byte("docs"),
	}))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	if tree.Files().Len() != 1 {
		t.Fatalf("root Files().Len() = %d, want 1", tree.Files().Len())
	}
	readme, err := tree.Files().Get("readme.md")
	if err != nil {
		t.Fatalf("Get(readme.md) error = %v", err)
	}
	if got := readFile(t, readme); got != "top" {
		t.Errorf("readme.md content = %q, want top", got)
	}

	assets, err := tree.Subdirectories().Get("Assets")
	if err != nil {
		t.Fatalf("Get(Assets) error = %v", err)
	}
	if assets.Parent() != tree {
		t.Error("Assets.Parent() is not the root")
	}
	if assets.Files().Len() != 2 {
		t.Errorf("Assets Files().Len() = %d, want 2", assets.Files().Len())
	}

	fonts, err := assets.Subdirectories().Get("Fonts")
	if err != nil {
		t.Fatalf("Get(Fonts) error = %v", err)
	}
	if fonts.Parent() != assets {
		t.Error("Fonts.Parent() is not Assets")
	}
	mono, err := fonts.Files().Get("mono.tt")
	if err != nil {
		t.Fatalf("Get(mono.tt) error = %v", err)
	}
	if mono.Parent() != fonts {
		t.Error("mono.tt Parent() is not Fonts")
	}
	if mono.Identifier() != "App.Assets.Fonts.mono.tt" {
		t.Errorf("Identifier() = %q, want App.Assets.Fonts.mono.tt", mono.Identifier())
	}
	if mono.SourceName() != "App" {
		t.Errorf("SourceName() = %q, want App", mono.SourceName())
	}
}

func TestNewTree_PathRoundTrip(t *testing.T) {
	identifiers := map[string][]byte{
		"App.readme.md":            []byte("1"),
		"App.Assets.logo.png":      []byte("2"),
		"App.Assets.Fonts.mono.tt": []byte("3"),
		"App.Docs.index.html":      []byte("4"),
		"App.Docs.Api.index.html":  []byte("5"),
	}
	want := []string{
		"Assets/Fonts/mono.tt",
		"Assets/logo.png",
		"Docs/Api/index.html",
		"Docs/index.html",
		"readme.md",
	}

	tree, err := NewTree(NewStaticSource("App", identifiers))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	var got []string
	for file := range tree.AllFiles() {
		got = append(got, file.Path())
	}
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestNewTree_DuplicateFileNames(t *testing.T) {
	_, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App.Dir.File.txt": []byte("a"),
		"App.Dir.file.txt": []byte("b"),
	}))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("NewTree() error = %v, want ErrDuplicateName", err)
	}
}

func TestNewTree_DuplicateDirectoryNames(t *testing.T) {
	// "Dir" and "dir" become sibling directories differing only by case.
	_, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App.Dir.First.txt":  []byte("a"),
		"App.dir.Second.txt": []byte("b"),
	}))
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("NewTree() error = %v, want ErrDuplicateName", err)
	}
}

func TestNewTree_MalformedIdentifier(t *testing.T) {
	_, err := NewTree(NewStaticSource("App", map[string][]byte{
		"Other.File.txt": []byte("a"),
	}))
	if !errors.Is(err, ErrMalformedIdentifier) {
		t.Fatalf("NewTree() error = %v, want ErrMalformedIdentifier", err)
	}
}

func TestNewTree_ExplicitSeparator(t *testing.T) {
	tree, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App/Assets/File.With.Dots.txt": []byte("dotted"),
	}, WithSeparator('/')))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	assets, err := tree.Subdirectories().Get("Assets")
	if err != nil {
		t.Fatalf("Get(Assets) error = %v", err)
	}
	file, err := assets.Files().Get("File.With.Dots.txt")
	if err != nil {
		t.Fatalf("Get(File.With.Dots.txt) error = %v", err)
	}
	if got := readFile(t, file); got != "dotted" {
		t.Errorf("content = %q, want dotted", got)
	}
}

func TestDirectory_Path(t *testing.T) {
	tree, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App.A.B.file.txt": []byte("x"),
	}))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}

	if tree.Path() != "" {
		t.Errorf("root Path() = %q, want empty", tree.Path())
	}
	a, err := tree.Subdirectories().Get("A")
	if err != nil {
		t.Fatalf("Get(A) error = %v", err)
	}
	b, err := a.Subdirectories().Get("B")
	if err != nil {
		t.Fatalf("Get(B) error = %v", err)
	}
	if b.Path() != "A/B" {
		t.Errorf("Path() = %q, want A/B", b.Path())
	}
}
