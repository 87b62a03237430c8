// SPDX-License-Identifier: MPL-2.0

package embedded

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the sentinel error wrapped by InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedIdentifier is the sentinel error wrapped by MalformedIdentifierError.
	ErrMalformedIdentifier = errors.New("malformed resource identifier")

	// ErrDuplicateName is the sentinel error wrapped by DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("name not found")

	// ErrIndexOutOfRange is the sentinel error wrapped by IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type (
	// InvalidArgumentError is returned when a required input is missing,
	// such as a nil source passed to Merge.
	InvalidArgumentError struct {
		// Argument names the offending parameter.
		Argument string
		// Reason describes what was wrong with it.
		Reason string
	}

	// MalformedIdentifierError is returned when a resource identifier does
	// not begin with the expected prefix followed by the separator.
	MalformedIdentifierError struct {
		Identifier string
		Prefix     string
		Separator  rune
	}

	// DuplicateNameError is returned when two siblings collide under
	// case-insensitive name comparison.
	DuplicateNameError struct {
		Name string
	}

	// NotFoundError is returned when a name lookup misses.
	NotFoundError struct {
		Name string
	}

	// IndexOutOfRangeError is returned when a positional lookup falls
	// outside [0, Len).
	IndexOutOfRangeError struct {
		Index int
		Len   int
	}
)

// Error implements the error interface for InvalidArgumentError.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// Error implements the error interface for MalformedIdentifierError.
func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed resource identifier %q: expected %q prefix followed by %q",
		e.Identifier, e.Prefix, string(e.Separator))
}

// Unwrap returns ErrMalformedIdentifier for errors.Is() compatibility.
func (e *MalformedIdentifierError) Unwrap() error { return ErrMalformedIdentifier }

// Error implements the error interface for DuplicateNameError.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q: names must be unique ignoring case", e.Name)
}

// Unwrap returns ErrDuplicateName for errors.Is() compatibility.
func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("name %q not found", e.Name)
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Error implements the error interface for IndexOutOfRangeError.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is() compatibility.
func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }
