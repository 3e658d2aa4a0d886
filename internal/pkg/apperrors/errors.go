package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
	ErrInvalidReference      = errors.New("referenced resource does not exist")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Validation errors
	ErrValidationFailed  = errors.New("validation failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Entity specific not-found errors. They all match ErrResourceNotFound with errors.Is.
var (
	ErrSpeciesNotFound     = NewResourceNotFoundError("species not found")
	ErrUserNotFound        = NewResourceNotFoundError("user not found")
	ErrObservationNotFound = NewResourceNotFoundError("observation not found")
	ErrActivityNotFound    = NewResourceNotFoundError("activity not found")
	ErrWaterPointNotFound  = NewResourceNotFoundError("water point not found")
	ErrPatrolRouteNotFound = NewResourceNotFoundError("patrol route not found")
	ErrPatrolLogNotFound   = NewResourceNotFoundError("patrol log not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new custom error for unique constraint violations
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewInvalidReferenceError reports a write that points at a row that does not exist
func NewInvalidReferenceError(field string) error {
	return &CustomError{
		Err:     ErrInvalidReference,
		Message: fmt.Sprintf("%s: references a record that does not exist", field),
		Details: map[string]interface{}{"field": field},
	}
}

// NewUnsupportedFormatError creates an error for rejected upload or export formats
func NewUnsupportedFormatError(message string) error {
	return &CustomError{
		Err:     ErrUnsupportedFormat,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// ValidationError names the offending field and the constraint it violated.
type ValidationError struct {
	Field      string
	Constraint string
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Constraint
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
}

// Unwrap lets errors.Is(err, ErrValidationFailed) succeed
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
