// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [manifest-dir]",
	Short: "Print every resource path in the merged tree",
	Long: `Print the relative path of every resource in the merged tree, one
per line, in pre-order: a directory's own files first, then each
subdirectory in name order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := loadMergedTree(args)
		if err != nil {
			return err
		}

		for file := range merged.AllFiles() {
			fmt.Fprintln(cmd.OutOrStdout(), file.Path())
		}
		return nil
	},
}
