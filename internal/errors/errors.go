package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure kind for stable matching in callers and tests.
type ErrorCode string

const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Input validation
	ErrInvalidVersion     ErrorCode = "INVALID_VERSION"
	ErrInvalidPackageName ErrorCode = "INVALID_PACKAGE_NAME"

	// Artifact construction
	ErrBuild ErrorCode = "BUILD"

	// Package manager calls
	ErrQuery     ErrorCode = "QUERY"
	ErrInstall   ErrorCode = "INSTALL"
	ErrUninstall ErrorCode = "UNINSTALL"

	// Uninstall safety
	ErrNotInstalled ErrorCode = "NOT_INSTALLED"
	ErrNotTransient ErrorCode = "NOT_TRANSIENT"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// Error is a coded error with an optional wrapped cause.
type Error struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches two coded errors by code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a coded error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error under a code. Returns nil for a nil cause.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error under a code with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// CodeOf returns the code carried by err, or ErrUnknown.
func CodeOf(err error) ErrorCode {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code
	}
	return ErrUnknown
}
