// Package errors provides error handling for typegen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := resolve(cat); err != nil {
//	    return errors.Wrap(err, "failed to resolve catalogue")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "regenerate the dump")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownTypeTag) {
//	    // version mismatch between dump and mapper
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Wrap these with errors.Wrap() to add context while
// preserving identity for errors.Is().
var (
	// ErrUnknownTypeTag indicates a type descriptor carries a raw tag outside
	// the supported vocabulary (dump and generator versions disagree)
	ErrUnknownTypeTag = New("unknown type tag")

	// ErrMalformedCatalogue indicates the reflected catalogue cannot be turned
	// into a type graph (unresolvable parent, cycle, missing "types")
	ErrMalformedCatalogue = New("malformed catalogue")

	// ErrInvalidConfig indicates the generator configuration failed validation
	ErrInvalidConfig = New("invalid configuration")
)

// IsUnknownTypeTag checks if an error is or wraps ErrUnknownTypeTag
func IsUnknownTypeTag(err error) bool {
	return err != nil && Is(err, ErrUnknownTypeTag)
}

// IsMalformedCatalogue checks if an error is or wraps ErrMalformedCatalogue
func IsMalformedCatalogue(err error) bool {
	return err != nil && Is(err, ErrMalformedCatalogue)
}

// IsInvalidConfig checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfig(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// NewUnknownTypeTagError creates an unknown-type-tag error for the given raw tag
func NewUnknownTypeTagError(tag string) error {
	err := Wrapf(ErrUnknownTypeTag, "raw type %q", tag)
	return WithHint(err, "the dump was produced by a newer reflection tool; update the type mapping or regenerate the dump")
}

// NewMalformedCatalogueError creates a malformed-catalogue error with a formatted message
func NewMalformedCatalogueError(format string, args ...interface{}) error {
	return Wrap(ErrMalformedCatalogue, Newf(format, args...).Error())
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
