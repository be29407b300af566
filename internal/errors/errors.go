// Package errors defines the error taxonomy of the search engine boundary.
// The taxonomy is deliberately narrow: the search core itself degrades
// silently (dangling references are skipped, empty queries return empty
// results), so errors only arise at the API and persistence edges.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSnapshotNotFound is returned when no model snapshot exists on disk.
	ErrSnapshotNotFound = errors.New("model snapshot not found")
)

// ValidationError represents an input validation error with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SnapshotNotFoundError reports a missing model snapshot with its path.
type SnapshotNotFoundError struct {
	Path string
}

func (e *SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("model snapshot not found at '%s'", e.Path)
}

func (e *SnapshotNotFoundError) Is(target error) bool {
	return target == ErrSnapshotNotFound
}

// NewSnapshotNotFoundError creates a new SnapshotNotFoundError.
func NewSnapshotNotFoundError(path string) *SnapshotNotFoundError {
	return &SnapshotNotFoundError{Path: path}
}
