// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for resbrowser.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/config"
	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, available to all commands.
	cfg = config.DefaultConfig()

	// logger writes diagnostics to stderr; Debug level when verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "resbrowser",
		Short: "Browse and extract embedded resource trees",
		Long: TitleStyle.Render("resbrowser") + SubtitleStyle.Render(" - Browse and extract embedded resource trees") + `

resbrowser turns flat, dotted resource identifiers into navigable
directory trees. Multiple sources merge into one tree with
latest-wins precedence: when two sources provide the same relative
path, the source listed last in resources.cue overrides the others.

Sources are declared in a 'resources.cue' manifest using CUE format.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a resources.cue listing your sources in precedence order
  2. Inspect the merged tree with: resbrowser tree
  3. Extract it with: resbrowser copy --recursive . ./out

` + SubtitleStyle.Render("Examples:") + `
  resbrowser tree               Render the merged resource tree
  resbrowser list               Print every resource path
  resbrowser copy . ./out       Copy root-level resources to ./out
  resbrowser config show        Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/resbrowser/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
		if !verbose {
			verbose = cfg.UI.Verbose
		}
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values render their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
