// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/config"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage resbrowser configuration",
	Long: `Manage resbrowser configuration.

Configuration is stored in:
  - Linux: ~/.config/resbrowser/config.cue
  - macOS: ~/Library/Application Support/resbrowser/config.cue
  - Windows: %APPDATA%\resbrowser\config.cue

A config.cue in the working directory takes effect when no file exists
in the standard directory. Environment variables prefixed with
RESBROWSER_ override file values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// configTOML mirrors Config for TOML output; viper's mapstructure tags do
// not drive go-toml.
type configTOML struct {
	DefaultSeparator string `toml:"default_separator,omitempty"`
	Copy             struct {
		MaxParallel int `toml:"max_parallel"`
	} `toml:"copy"`
	UI struct {
		ColorScheme string `toml:"color_scheme"`
		Verbose     bool   `toml:"verbose"`
	} `toml:"ui"`
}

func init() {
	var showFormat string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var encoded string
			switch showFormat {
			case "toml":
				out := configTOML{DefaultSeparator: cfg.DefaultSeparator}
				out.Copy.MaxParallel = cfg.Copy.MaxParallel
				out.UI.ColorScheme = string(cfg.UI.ColorScheme)
				out.UI.Verbose = cfg.UI.Verbose

				data, err := toml.Marshal(out)
				if err != nil {
					return fmt.Errorf("failed to encode configuration: %w", err)
				}
				encoded = string(data)
			case "cue":
				encoded = config.GenerateCUE(cfg)
			default:
				return fmt.Errorf("unknown format %q: must be 'toml' or 'cue'", showFormat)
			}

			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Effective configuration"))
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), encoded)
			return nil
		},
	}
	showCmd.Flags().StringVar(&showFormat, "format", "toml", "output format: toml or cue")
	configCmd.AddCommand(showCmd)

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}

			cfgPath := filepath.Join(cfgDir, "config.cue")
			fmt.Fprintln(cmd.OutOrStdout(), "Config directory:", cfgDir)
			if _, statErr := os.Stat(cfgPath); statErr == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Config file:", cfgPath)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Config file:", SubtitleStyle.Render("(using defaults)"))
			}
			return nil
		},
	})
}
