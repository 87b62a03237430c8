// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed usage.md
var usageDoc string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the usage guide",
	Long:  "Render the usage guide covering the manifest format, identifiers, and commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := renderMarkdown(usageDoc, cfg.UI.ColorScheme)
		if err != nil {
			return fmt.Errorf("failed to render documentation: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// renderMarkdown renders markdown for the terminal honoring the configured
// color scheme.
func renderMarkdown(content string, scheme config.ColorScheme) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	switch scheme {
	case config.ColorSchemeDark:
		styleOpt = glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		styleOpt = glamour.WithStandardStyle("light")
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}

	return renderer.Render(content)
}
