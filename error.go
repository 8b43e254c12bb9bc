package xivchar

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EMALFORMED = "malformed"
	EUPSTREAM  = "upstream"
)

// UpstreamPrefix starts the message of every error produced by Upstream so
// callers can tell a failed fetch apart from an extraction that found nothing.
const UpstreamPrefix = "scraping failed"

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Underlying cause, if any.
	Err error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("xivchar error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Upstream wraps a fetch failure as an EUPSTREAM error.
// Returns nil if err is nil.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    EUPSTREAM,
		Message: UpstreamPrefix + ": " + err.Error(),
		Err:     err,
	}
}
