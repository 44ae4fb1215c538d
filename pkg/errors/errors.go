// Package errors provides structured error types for the glyphgrid engine
// and its surfaces.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the engine's error taxonomy:
//   - INVALID_*: malformed motion or pictograph input (validation errors)
//   - CONTEXT_REQUIRED: a calculation invoked without the pictograph context
//     it needs (context errors)
//   - CONFIG_*: placement asset stores failing to load or validate
//     (configuration-load errors, fatal at start-up)
//
// Lookup misses are deliberately absent: they are expected control flow,
// resolved by the special → default → zero fallback chain, and never become
// errors.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTurns, "invalid turns value %v", turns)
//	if errors.Is(err, errors.ErrCodeInvalidTurns) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfigParse, origErr, "loading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the engine's error taxonomy.
const (
	// Validation errors — malformed input
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTurns    Code = "INVALID_TURNS"
	ErrCodeInvalidLocation Code = "INVALID_LOCATION"
	ErrCodeInvalidMotion   Code = "INVALID_MOTION"
	ErrCodeInvalidLetter   Code = "INVALID_LETTER"
	ErrCodeInvalidGridMode Code = "INVALID_GRID_MODE"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidHandpath Code = "INVALID_HANDPATH"

	// Context errors — a calculation missing required surroundings
	ErrCodeContextRequired Code = "CONTEXT_REQUIRED"

	// Configuration-load errors — fatal at start-up
	ErrCodeConfigParse   Code = "CONFIG_PARSE"
	ErrCodeConfigSchema  Code = "CONFIG_SCHEMA"
	ErrCodeConfigMissing Code = "CONFIG_MISSING"
	ErrCodeTableInvalid  Code = "TABLE_INVALID"

	// Resource errors on the API surface
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether the error is one of the input-validation or
// context codes. The API surface maps these to HTTP 400.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidTurns, ErrCodeInvalidLocation,
		ErrCodeInvalidMotion, ErrCodeInvalidLetter, ErrCodeInvalidGridMode,
		ErrCodeInvalidColor, ErrCodeInvalidHandpath, ErrCodeContextRequired:
		return true
	}
	return false
}
