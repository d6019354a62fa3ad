// Package errors provides structured error types for jobtimeline.
//
// Every error that crosses a package boundary carries a machine-readable
// [Code] so the CLI and the HTTP API can report failures consistently:
//
//   - INVALID_*: input validation failures (bad options, bad data)
//   - LENGTH_MISMATCH: parallel job sequences of different lengths
//   - FILE_NOT_FOUND: missing dataset or config file
//   - UNSUPPORTED / INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGroupNum, "group_num should be a positive integer, but got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidGroupNum) {
//	    // reject request
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGroupNum Code = "INVALID_GROUP_NUM"
	ErrCodeLengthMismatch  Code = "LENGTH_MISMATCH"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidMarker   Code = "INVALID_MARKER"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
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

// coder is implemented by typed errors that are not *Error but still
// report a code (see timeline.LengthMismatchError).
type coder interface {
	ErrorCode() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a coded error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode()
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

// IsValidation reports whether err is a caller mistake rather than an internal failure.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidGroupNum, ErrCodeLengthMismatch,
		ErrCodeInvalidFormat, ErrCodeInvalidStyle, ErrCodeInvalidMarker,
		ErrCodeInvalidColor, ErrCodeInvalidConfig, ErrCodeInvalidPath:
		return true
	}
	return false
}
