// Package errors provides structured error types shared by the ambient
// layer (CLI, HTTP API) around the layout core.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidAlgorithm) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeMalformedReassoc, origErr, "reassociating %q", label)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the layout core and the ambient layer wrapping it.
const (
	// ErrCodeMalformedReassoc classifies a fatal internal invariant
	// violation: the precedence-climbing parser produced an unconsumed
	// token stream. pkg/reassoc itself reports this with a plain error
	// that carries no Code.
	ErrCodeMalformedReassoc Code = "MALFORMED_REASSOC"
	// ErrCodeNonAxisAligned classifies a non-axis-aligned segment reaching
	// the polygon kernel, which indicates a caller bug. pkg/polygon does
	// not check for this and returns no errors.
	ErrCodeNonAxisAligned Code = "NON_AXIS_ALIGNED"
	// ErrCodeNonAdjacentRegions classifies a backing.Join of two Regions
	// that don't meet edge-to-edge. backing.Join itself reports this with
	// a plain error that carries no Code.
	ErrCodeNonAdjacentRegions Code = "NON_ADJACENT_REGIONS"
	// ErrCodeInvalidAlgorithm is raised for an unrecognized algorithm name.
	ErrCodeInvalidAlgorithm Code = "INVALID_ALGORITHM"
	// ErrCodeInvalidSettings is raised when a settings value has the
	// wrong kind for the field being set, or fails validation.
	ErrCodeInvalidSettings Code = "INVALID_SETTINGS"
	// ErrCodeInvalidInput is raised for malformed request bodies (JSON
	// import, HTTP API payloads).
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeNotFound is raised when a requested history record or
	// cache entry doesn't exist.
	ErrCodeNotFound Code = "NOT_FOUND"
	// ErrCodeRenderUnavailable is raised when an export format's external
	// dependency (e.g. rsvg-convert) isn't installed.
	ErrCodeRenderUnavailable Code = "RENDER_UNAVAILABLE"
	// ErrCodeInternal is a catch-all for unexpected internal failures.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err has the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error, stripping the
// machine-readable code prefix when present.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the HTTP status pkg/httpapi should
// respond with; unrecognized codes map to 500.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidAlgorithm, ErrCodeInvalidSettings, ErrCodeInvalidInput:
		return 400
	case ErrCodeNotFound:
		return 404
	case ErrCodeRenderUnavailable:
		return 503
	default:
		return 500
	}
}
