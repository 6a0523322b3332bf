package envseek

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode defines string error
type ErrorCode string

// Error returns error message
func (e ErrorCode) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates that a source has no usable value for the key
	ErrNotFound = ErrorCode("value not found")
	// ErrIO indicates that reading a file or stream failed
	ErrIO = ErrorCode("i/o failure")
	// ErrEncoding indicates that a value is not valid UTF-8 text
	ErrEncoding = ErrorCode("value is not valid text")
	// ErrEmptyKey indicates that an empty key was requested
	ErrEmptyKey = ErrorCode("key is empty")
	// ErrUnknownMode indicates that a resolution mode is outside of the known set
	ErrUnknownMode = ErrorCode("unknown resolution mode")
)

// Error provides details about a failed resolution.
type Error struct {
	Key    string
	Source string
	Code   ErrorCode
	Reason string
	Cause  error
}

func (e *Error) Error() string {
	sb := new(strings.Builder)
	if e.Source != "" {
		sb.WriteString(e.Source + ": ")
	}
	if e.Key != "" {
		sb.WriteString(fmt.Sprintf("key %q: ", e.Key))
	}
	sb.WriteString(e.Code.Error())
	if e.Reason != "" {
		sb.WriteString(" (" + e.Reason + ")")
	}
	if e.Cause != nil {
		sb.WriteString(": " + e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes both the error code and the underlying cause,
// so errors.Is matches either of them.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Code}
	}
	return []error{e.Code, e.Cause}
}

// IsNotFound reports whether err means that no value was available.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIO reports whether err was caused by a failed file or stream operation.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsEncoding reports whether err was caused by a value that is not valid text.
func IsEncoding(err error) bool {
	return errors.Is(err, ErrEncoding)
}

func newError(source, key string, code ErrorCode, reason string, cause error) *Error {
	return &Error{
		Key:    key,
		Source: source,
		Code:   code,
		Reason: reason,
		Cause:  cause,
	}
}
