// Package errors provides structured error types for nbexplode.
//
// Every failure raised while exploding or recombining a notebook carries a
// machine-readable [Code] so callers (and tests) can tell a malformed
// descriptor from a missing file without matching on message text.
//
// # Error Codes
//
//   - INVALID_*: Input validation failures (paths, cell ids, extensions)
//   - MIME_TYPE, DESCRIPTOR, SOURCE_FILE: Exploded-tree structure failures
//   - MISSING_FILE: A file the layout requires is absent
//   - IO, INTERNAL_ERROR: Everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMimeType, "unknown mime type %q", mime)
//	if errors.Is(err, errors.ErrCodeMimeType) {
//	    // Handle unknown mime type
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidCellID    Code = "INVALID_CELL_ID"
	ErrCodeInvalidExtension Code = "INVALID_EXTENSION"
	ErrCodeInvalidNotebook  Code = "INVALID_NOTEBOOK"

	// Exploded tree structure errors
	ErrCodeMimeType    Code = "MIME_TYPE"
	ErrCodeDescriptor  Code = "DESCRIPTOR"
	ErrCodeSourceFile  Code = "SOURCE_FILE"
	ErrCodeMissingFile Code = "MISSING_FILE"

	// Internal errors
	ErrCodeIO          Code = "IO"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
