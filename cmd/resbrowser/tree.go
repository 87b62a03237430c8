// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/issue"
	"github.com/Andrei15193/EmbeddedResourceBrowser/pkg/embedded"
	"github.com/Andrei15193/EmbeddedResourceBrowser/pkg/manifest"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [manifest-dir]",
	Short: "Render the merged resource tree",
	Long: `Render the merged resource tree of all sources declared in the
resources.cue manifest. Later sources override earlier ones on
conflicting paths.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := loadMergedTree(args)
		if err != nil {
			return err
		}

		rendered := tree.Root(TitleStyle.Render("resources"))
		appendDirectory(rendered, merged)
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// loadMergedTree loads the manifest in the given (or current) directory and
// merges its sources.
func loadMergedTree(args []string) (*embedded.Directory, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	m, err := manifest.Load(dir)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load manifest").
			WithResource(dir).
			WithSuggestion("Create a resources.cue listing your sources").
			WithSuggestion("See 'resbrowser docs' for the manifest format").
			Wrap(err).
			BuildError()
	}
	m.DefaultSeparator = cfg.DefaultSeparator
	logger.Debug("loaded manifest", "path", m.FilePath, "sources", len(m.Sources))

	merged, err := m.Merge()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "merge resource sources")
	}
	return merged, nil
}

// appendDirectory recursively mirrors a resource directory into a renderable
// tree node: subdirectories first in name order, then files.
func appendDirectory(node *tree.Tree, dir *embedded.Directory) {
	for subdirectory := range dir.Subdirectories().All() {
		child := tree.Root(DirectoryStyle.Render(subdirectory.Name()))
		appendDirectory(child, subdirectory)
		node.Child(child)
	}
	for file := range dir.Files().All() {
		node.Child(file.Name())
	}
}
