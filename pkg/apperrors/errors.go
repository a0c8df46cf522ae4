// Package apperrors holds the error types shared by the contact service, the store and the API.
package apperrors

import "fmt"

// ValidationError reports the first payload or query field that failed its rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field string, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports a unique field that is already taken by another contact.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

func NewConflictError(field string) error {
	return &ConflictError{Field: field}
}

// NotFoundError is returned when a contact id does not exist (or can never exist).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// OutOfRangeError is returned when a requested page does not exist.
type OutOfRangeError struct {
	Page       int64
	TotalPages int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Invalid page: %d (total pages: %d)", e.Page, e.TotalPages)
}

func NewOutOfRangeError(page int64, totalPages int64) error {
	return &OutOfRangeError{Page: page, TotalPages: totalPages}
}

// StoreError wraps an unexpected failure of the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
