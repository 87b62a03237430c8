// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/copier"
	"github.com/Andrei15193/EmbeddedResourceBrowser/internal/issue"

	"github.com/spf13/cobra"
)

var (
	copyRecursive   bool
	copyMaxParallel int

	copyCmd = &cobra.Command{
		Use:   "copy [manifest-dir] <dest>",
		Short: "Copy merged resources to a destination directory",
		Long: `Copy the files of the merged resource tree into a destination
directory. With --recursive the destination mirrors the whole
subdirectory structure; without it only root-level files copy.

Files copy concurrently with no ordering guarantee. Use
--max-parallel to bound the number of in-flight copies.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestArgs, dest := args[:len(args)-1], args[len(args)-1]

			merged, err := loadMergedTree(manifestArgs)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dest, 0o755); err != nil {
				return issue.NewErrorContext().
					WithOperation("create destination directory").
					WithResource(dest).
					Wrap(err).
					BuildError()
			}

			maxParallel := copyMaxParallel
			if !cmd.Flags().Changed("max-parallel") {
				maxParallel = cfg.Copy.MaxParallel
			}
			opts := []copier.Option{copier.WithLogger(logger)}
			if maxParallel > 0 {
				opts = append(opts, copier.WithLimit(maxParallel))
			}

			if copyRecursive {
				err = copier.CopyRecursive(cmd.Context(), merged, dest, opts...)
			} else {
				err = copier.Copy(cmd.Context(), merged, dest, opts...)
			}
			if err != nil {
				return issue.WrapWithOperation(err, "copy resources")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "copied resources to", dest)
			return nil
		},
	}
)

func init() {
	copyCmd.Flags().BoolVarP(&copyRecursive, "recursive", "r", false, "mirror the whole subdirectory structure")
	copyCmd.Flags().IntVar(&copyMaxParallel, "max-parallel", 0, "max concurrent file copies (0 = unbounded)")
}
