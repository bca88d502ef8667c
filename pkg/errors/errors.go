package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError indicates that a requested resource does not exist.
// Handlers translate it into a 404 response.
type ResourceNotFoundError struct {
	Resource string
	ID       any
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// NewTutorialNotFoundError reports a missing tutorial identifier.
func NewTutorialNotFoundError(id int64) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: "tutorial", ID: id}
}

// IsResourceNotFoundError checks if the error chain contains a ResourceNotFoundError.
func IsResourceNotFoundError(err error) bool {
	var notFound *ResourceNotFoundError
	return errors.As(err, &notFound)
}

// ValidationError indicates that a submitted payload or parameter is malformed.
// Handlers translate it into a 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid request: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError checks if the error chain contains a ValidationError.
func IsValidationError(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}
