package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidArgument indicates a malformed identifier or missing required input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInternal indicates an unexpected storage or formatting failure.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// FieldViolation is one field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field of a failed rule set.
// It unwraps to ErrValidation so callers can match the kind with errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError from field violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// DuplicateError names the field whose uniqueness constraint was violated.
// Both the proactive pre-check and the storage engine's own constraint
// violation are mapped to this type so callers see one kind either way.
type DuplicateError struct {
	Field string
	Value any
}

func (e *DuplicateError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("duplicate value %v for field %q", e.Value, e.Field)
	}
	return fmt.Sprintf("duplicate value for field %q", e.Field)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

// NewDuplicateError builds a DuplicateError for the offending field.
func NewDuplicateError(field string, value any) *DuplicateError {
	return &DuplicateError{Field: field, Value: value}
}

// NewInvalidArgumentError wraps ErrInvalidArgument with a caller message.
func NewInvalidArgumentError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidArgument)
}

// NewNotFoundError wraps ErrNotFound naming the missing entity.
func NewNotFoundError(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}
