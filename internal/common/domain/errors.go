package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying a DomainError.
var (
	ErrValidation   = errors.New("validation failed")
	ErrCapacity     = errors.New("capacity exceeded")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// DomainError is an error with a user-facing message and a classifying sentinel.
type DomainError struct {
	Err     error
	Message string
	Fields  map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a validation error with the given message.
func NewValidationError(message string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: message}
}

// NewFieldValidationError returns a validation error that lists the offending fields.
func NewFieldValidationError(fields map[string]string) *DomainError {
	msg := "invalid booking data"
	if len(fields) == 1 {
		for _, m := range fields {
			msg = m
		}
	}
	return &DomainError{Err: ErrValidation, Message: msg, Fields: fields}
}

// NewCapacityError returns an error for a full day or slot.
func NewCapacityError(message string) *DomainError {
	return &DomainError{Err: ErrCapacity, Message: message}
}

// NewNotFoundError returns an error for a missing entity.
func NewNotFoundError(entity, id string) *DomainError {
	return &DomainError{Err: ErrNotFound, Message: fmt.Sprintf("%s %s not found", entity, id)}
}

// NewUnauthorizedError returns an error for a rejected credential.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Err: ErrUnauthorized, Message: message}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err, kind error) bool {
	var domErr *DomainError
	if !errors.As(err, &domErr) {
		return false
	}
	return errors.Is(domErr.Err, kind)
}
