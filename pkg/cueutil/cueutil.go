// SPDX-License-Identifier: MPL-2.0

// Package cueutil parses CUE documents against embedded schemas.
//
// Manifest and configuration files share the same three-step flow: compile
// the embedded schema, compile the user document and unify the two, then
// validate and decode into a Go struct. ParseAndDecode centralizes that flow
// along with user-facing error formatting.
package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// defaultMaxFileSize caps parsed documents at 1 MiB; manifests and config
// files are tiny and anything larger is almost certainly a mistake.
const defaultMaxFileSize int64 = 1 << 20

type (
	// Option configures ParseAndDecode.
	Option func(*options)

	options struct {
		filename    string
		maxFileSize int64
	}

	// Result holds a successful parse: the decoded struct plus the
	// unified CUE value for callers that need extra lookups.
	Result[T any] struct {
		Value   *T
		Unified cue.Value
	}
)

// WithFilename sets the file name used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) { o.filename = filename }
}

// WithMaxFileSize overrides the default document size limit.
func WithMaxFileSize(maxFileSize int64) Option {
	return func(o *options) { o.maxFileSize = maxFileSize }
}

// ParseAndDecode compiles schema, compiles data, unifies the two at the
// definition named by schemaPath (e.g. "#Manifest"), validates with concrete
// values required, and decodes into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*Result[T], error) {
	o := options{maxFileSize: defaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}
	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}
	if int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), filename)
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &Result[T]{Value: &result, Unified: unified}, nil
}

// ParseAndDecodeString is ParseAndDecode with the schema as a string, for
// schemas embedded via //go:embed into string variables.
func ParseAndDecodeString[T any](schema string, data []byte, schemaPath string, opts ...Option) (*Result[T], error) {
	return ParseAndDecode[T]([]byte(schema), data, schemaPath, opts...)
}
