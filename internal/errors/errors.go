// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyMessage indicates a chat message with no text.
	ErrEmptyMessage = fmt.Errorf("%w: message is required", ErrInvalidInput)

	// ErrMessageTooLong indicates a chat message above the configured limit.
	ErrMessageTooLong = fmt.Errorf("%w: message too long", ErrInvalidInput)

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrSnapshotUnavailable indicates no directory snapshot could be loaded.
	ErrSnapshotUnavailable = errors.New("directory snapshot unavailable")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")
)

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsRateLimitExceeded reports whether err is or wraps ErrRateLimitExceeded.
func IsRateLimitExceeded(err error) bool { return errors.Is(err, ErrRateLimitExceeded) }

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel the failure corresponds to, if any.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidInput
	}
	return e.Err
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// LoadError reports a snapshot source that failed to load a table.
type LoadError struct {
	Source string
	Table  string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("load %s from %s: %v", e.Table, e.Source, e.Err)
	}
	return fmt.Sprintf("load from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error.
func NewLoadError(source, table string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Table:  table,
		Err:    err,
	}
}
