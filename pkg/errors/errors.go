package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind classifies a persistence failure.
type Kind string

const (
	// KindConstraintViolation covers missing required fields, absent foreign
	// key targets, enum values outside the allowed set and attempts to mutate
	// immutable fields.
	KindConstraintViolation Kind = "constraint_violation"
	// KindNotFound covers update/delete/get targets that do not exist.
	KindNotFound Kind = "not_found"
)

// AppError is a classified error carrying enough detail (entity, field,
// constraint) for the caller to act on. Operations never partially apply
// themselves before returning one.
type AppError struct {
	Kind       Kind
	Entity     string
	Field      string
	Constraint string
	Err        error
}

func (e *AppError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s on %s.%s", e.Kind, e.Constraint, e.Entity, e.Field)
	case e.Constraint != "":
		return fmt.Sprintf("%s: %s on %s", e.Kind, e.Constraint, e.Entity)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Entity)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status for the API surface.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConstraintViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewConstraintViolation builds a constraint violation for entity. field may
// be empty when the violation is not attributable to a single column;
// constraint names the rule that was broken (e.g. "required", "foreign_key",
// "enum", "immutable").
func NewConstraintViolation(entity, field, constraint string) *AppError {
	return &AppError{
		Kind:       KindConstraintViolation,
		Entity:     entity,
		Field:      field,
		Constraint: constraint,
	}
}

// NewNotFound reports that the targeted entity row does not exist.
func NewNotFound(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Entity: entity}
}

// WithCause attaches the underlying driver error.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// IsConstraintViolation reports whether err or anything it wraps is a
// constraint violation.
func IsConstraintViolation(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Kind == KindConstraintViolation
}

// IsNotFound reports whether err or anything it wraps is a not-found error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Kind == KindNotFound
}
