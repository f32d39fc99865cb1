package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden is returned when a caller accesses another tenant's data
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated is returned when credentials are missing or invalid
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PolicyDeniedError is returned when the policy engine denies a command.
// It carries the denial reason and the pattern that matched, if any.
type PolicyDeniedError struct {
	Reason         string
	MatchedPattern string
}

func (e *PolicyDeniedError) Error() string {
	if e.MatchedPattern != "" {
		return fmt.Sprintf("command denied: %s (pattern %q)", e.Reason, e.MatchedPattern)
	}
	return fmt.Sprintf("command denied: %s", e.Reason)
}

// UpstreamError wraps failures from external systems (SSH, MCP, LLM provider).
type UpstreamError struct {
	System string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream failure: %v", e.System, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as a failure of the named external system.
func NewUpstreamError(system string, err error) error {
	return &UpstreamError{System: system, Err: err}
}
