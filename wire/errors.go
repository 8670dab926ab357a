package wire

import (
	"errors"
	"fmt"
)

// ParseError reports a dictionary that does not match the shape an entity
// expects, or a date/time value that cannot be parsed. It is the only error
// kind this package returns; callers distinguish failure causes by message.
type ParseError struct {
	Key     string // offending dictionary key, when known
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse: %s (caused by: %v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse: %s", e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error wrapping an optional cause
func NewParseError(message string, cause error) *ParseError {
	return &ParseError{
		Message: message,
		Cause:   cause,
	}
}

// NewMissingKeyError reports a required key absent from a dictionary
func NewMissingKeyError(key string, dict map[string]any) *ParseError {
	return &ParseError{
		Key:     key,
		Message: fmt.Sprintf("could not find key '%s' in '%v'", key, dict),
	}
}

// NewFieldError reports a value that is present but does not have the expected shape
func NewFieldError(key string, value any, reason string) *ParseError {
	return &ParseError{
		Key:     key,
		Message: fmt.Sprintf("invalid value '%v' for key '%s': %s", value, key, reason),
	}
}

// IsParseError checks if the error is a ParseError
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// AsParseError converts an error to a ParseError if possible
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}
