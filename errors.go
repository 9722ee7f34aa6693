package scalpel

import (
	"errors"
	"fmt"
)

// Error codes used throughout the package and its subpackages.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"
)

// Error is an application error carrying a machine-readable code
// alongside a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("scalpel error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an *Error with a printf-style message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode unwraps an error to its application error code, if any.
// Returns an empty string for a nil error and EINTERNAL for one
// without an *Error in its chain.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an error to its human-readable message. Returns
// an empty string for a nil error. Errors without an *Error in their
// chain return their own Error() text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
