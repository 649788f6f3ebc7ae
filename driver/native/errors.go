package native

import "errors"

// Package errors for the native driver.
var (
	// ErrLibraryNotFound is returned when the filament_c library cannot be
	// loaded.
	ErrLibraryNotFound = errors.New("native: filament_c library not found")

	// ErrMissingSymbol is returned when the library lacks a required
	// function.
	ErrMissingSymbol = errors.New("native: missing symbol")

	// ErrUnsupported is returned by Open in builds without goffi support:
	// cgo enabled, or a platform goffi cannot call into.
	ErrUnsupported = errors.New("native: not supported in this build")
)
