// Package core provides the main Sahayak assistant client.
package core

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingAPIKey indicates that the upstream API key is absent.
	// This is a startup error: it is returned before any network call.
	ErrMissingAPIKey = errors.New("api key is missing")

	// ErrTemplateNotFound indicates that a prompt template file could not be read.
	ErrTemplateNotFound = errors.New("prompt template not found")

	// ErrUpstream indicates that the upstream model API call failed.
	ErrUpstream = errors.New("upstream model call failed")

	// ErrStorageOperation indicates that a history storage operation failed.
	ErrStorageOperation = errors.New("storage operation failed")

	// ErrInvalidInput indicates that the provided input is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// AssistantError wraps errors with operation context.
//
// It provides additional context about which operation failed, making error
// messages more informative for debugging.
//
// Example:
//
//	err := &AssistantError{
//	    Op:  "Ask",
//	    Err: ErrUpstream,
//	}
//	// Error() returns: "sahayak: Ask: upstream model call failed"
type AssistantError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "sahayak: <Op>: <Err>"
func (e *AssistantError) Error() string {
	return fmt.Sprintf("sahayak: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
//
// This allows using errors.Is() and errors.As() with AssistantError.
func (e *AssistantError) Unwrap() error {
	return e.Err
}

// NewAssistantError creates a new AssistantError wrapping the given error.
//
// If err is nil, returns nil. This allows safe error wrapping:
//
//	if err != nil {
//	    return NewAssistantError("Ask", err)
//	}
//
// Parameters:
//   - op: Name of the operation (e.g., "Ask", "NewClient")
//   - err: The underlying error to wrap
//
// Returns an AssistantError, or nil if err is nil.
func NewAssistantError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &AssistantError{
		Op:  op,
		Err: err,
	}
}
