// Package reason defines the single error kind produced by the largo
// tokenizer, parser and evaluator.
package reason

import (
	"errors"
	"fmt"
)

// Error carries a human-readable cause. Parse failures, unbound symbols and
// builtin misuse all surface as *Error and differ only in Message.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "Error: " + e.Message
}

// New returns a reason with the given message.
func New(message string) *Error {
	return &Error{Message: message}
}

// Newf formats a reason message.
func Newf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Message extracts the reason text from err, looking through wrapping.
// Errors that are not reasons report their full Error() text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var r *Error
	if errors.As(err, &r) {
		return r.Message
	}
	return err.Error()
}

// Is reports whether err is (or wraps) a reason.
func Is(err error) bool {
	var r *Error
	return errors.As(err, &r)
}
