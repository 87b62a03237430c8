// SPDX-License-Identifier: MPL-2.0

// Package copier writes the files of a resource tree to a destination
// directory. Files copy concurrently, one goroutine per file; recursive
// mode mirrors the subdirectory structure first.
package copier

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Andrei15193/EmbeddedResourceBrowser/pkg/embedded"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

type (
	// Option configures a copy operation.
	Option func(*options)

	options struct {
		maxParallel int
		logger      *log.Logger
	}
)

// WithLimit caps the number of concurrent per-file copies. Zero or negative
// means unbounded; callers needing backpressure set their own cap.
func WithLimit(n int) Option {
	return func(o *options) { o.maxParallel = n }
}

// WithLogger routes per-file progress logging to the given logger. Without
// one, copies are silent.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Copy writes the directory's own files into dest, which must already
// exist. Files copy concurrently with no ordering guarantee; the first
// failure cancels files not yet started, and Copy returns after all
// in-flight copies finish. Cancellation via ctx is honored between files,
// never mid-copy.
func Copy(ctx context.Context, dir *embedded.Directory, dest string, opts ...Option) error {
	o := applyOptions(opts)
	group, ctx := errgroup.WithContext(ctx)
	if o.maxParallel > 0 {
		group.SetLimit(o.maxParallel)
	}
	copyFiles(ctx, group, dir, dest, o)
	return group.Wait()
}

// CopyRecursive is Copy extended to the whole subtree: destination
// subdirectories mirroring dir's subdirectories are created first, then
// every file in the subtree copies concurrently.
func CopyRecursive(ctx context.Context, dir *embedded.Directory, dest string, opts ...Option) error {
	o := applyOptions(opts)

	// Directories are created synchronously up front so concurrent file
	// copies never race a missing parent.
	dirs := map[*embedded.Directory]string{dir: dest}
	for subdirectory := range dir.AllSubdirectories() {
		path := filepath.Join(dirs[subdirectory.Parent()], subdirectory.Name())
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("creating destination directory %s: %w", path, err)
		}
		dirs[subdirectory] = path
	}

	group, ctx := errgroup.WithContext(ctx)
	if o.maxParallel > 0 {
		group.SetLimit(o.maxParallel)
	}
	for subdirectory, path := range dirs {
		copyFiles(ctx, group, subdirectory, path, o)
	}
	return group.Wait()
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// copyFiles schedules one copy per file of dir into dest.
func copyFiles(ctx context.Context, group *errgroup.Group, dir *embedded.Directory, dest string, o options) {
	for file := range dir.Files().All() {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if o.logger != nil {
				o.logger.Debug("copying resource", "path", file.Path(), "source", file.SourceName())
			}
			return copyFile(file, filepath.Join(dest, file.Name()))
		})
	}
}

func copyFile(file *embedded.File, dest string) error {
	reader, err := file.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", file.Path(), err)
	}
	defer reader.Close()

	writer, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(writer, reader); err != nil {
		writer.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}
	return nil
}
