// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"slices"
	"testing"
)

// walkFixture builds root -> {A -> {A1}, B} with one file per directory.
func walkFixture(t *testing.T) *Directory {
	t.Helper()
	tree, err := NewTree(NewStaticSource("App", map[string][]byte{
		"App.root.txt":       []byte("r"),
		"App.A.in-a.txt":     []byte("a"),
		"App.A.A1.in-a1.txt": []byte("a1"),
		"App.B.in-b.txt":     []byte("b"),
	}))
	if err != nil {
		t.Fatalf("NewTree() error = %v", err)
	}
	return tree
}

func TestAllSubdirectories_PreOrder(t *testing.T) {
	tree := walkFixture(t)

	var got []string
	for dir := range tree.AllSubdirectories() {
		got = append(got, dir.Name())
	}
	want := []string{"A", "A1", "B"}
	if !slices.Equal(got, want) {
		t.Errorf("AllSubdirectories() = %v, want %v", got, want)
	}
}

func TestAllSubdirectories_ExcludesReceiver(t *testing.T) {
	tree := walkFixture(t)

	for dir := range tree.AllSubdirectories() {
		if dir == tree {
			t.Fatal("AllSubdirectories() yielded the receiver")
		}
	}
}

func TestAllFiles_OwnFilesFirstThenPreOrder(t *testing.T) {
	tree := walkFixture(t)

	var got []string
	for file := range tree.AllFiles() {
		got = append(got, file.Name())
	}
	want := []string{"root.txt", "in-a.txt", "in-a1.txt", "in-b.txt"}
	if !slices.Equal(got, want) {
		t.Errorf("AllFiles() = %v, want %v", got, want)
	}
}

func TestTraversal_Restartable(t *testing.T) {
	tree := walkFixture(t)

	for pass := 0; pass < 3; pass++ {
		count := 0
		for range tree.AllSubdirectories() {
			count++
		}
		if count != 3 {
			t.Errorf("pass %d: %d subdirectories, want 3", pass, count)
		}
	}
}

func TestTraversal_EarlyStop(t *testing.T) {
	tree := walkFixture(t)

	var first string
	for dir := range tree.AllSubdirectories() {
		first = dir.Name()
		break
	}
	if first != "A" {
		t.Errorf("first subdirectory = %q, want A", first)
	}

	var firstFile string
	for file := range tree.AllFiles() {
		firstFile = file.Name()
		break
	}
	if firstFile != "root.txt" {
		t.Errorf("first file = %q, want root.txt", firstFile)
	}
}
