package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures for the HTTP layer
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindAuth        ErrorKind = "auth"
	KindPersistence ErrorKind = "persistence"
	KindExternal    ErrorKind = "external"
)

// ErrNotFound marks a keyed lookup that matched no row
var ErrNotFound = errors.New("not found")

// ErrDuplicate marks a write rejected by a unique constraint
var ErrDuplicate = errors.New("duplicate")

// AppError is the error type returned by the services
type AppError struct {
	Kind    ErrorKind
	Code    string // short machine code, e.g. "invalid_credentials"
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationError is returned when input is rejected before any write
func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Code: "validation", Message: message}
}

// AuthError wraps a failure reported by the auth server
func AuthError(code, message string, err error) error {
	return &AppError{Kind: KindAuth, Code: code, Message: message, Err: err}
}

// PersistenceError wraps a failed read or write against the store
func PersistenceError(message string, err error) error {
	return &AppError{Kind: KindPersistence, Code: "persistence", Message: message, Err: err}
}

// NotFoundError is a PersistenceError for a missing keyed row
func NotFoundError(message string) error {
	return &AppError{Kind: KindPersistence, Code: "not_found", Message: message, Err: ErrNotFound}
}

// ExternalServiceError wraps failures of Slack, the PDF renderer and similar collaborators
func ExternalServiceError(message string, err error) error {
	return &AppError{Kind: KindExternal, Code: "external", Message: message, Err: err}
}

// KindOf reports the kind of err, or "" when err is not an AppError
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
