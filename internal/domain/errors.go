package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrorKindValidation    ErrorKind = "VALIDATION_ERROR"
	ErrorKindInvalidStatus ErrorKind = "INVALID_STATUS"
	ErrorKindConflict      ErrorKind = "CONFLICT"
	ErrorKindUnauthorized  ErrorKind = "UNAUTHORIZED"
	ErrorKindNotFound      ErrorKind = "NOT_FOUND"
	ErrorKindUnexpected    ErrorKind = "UNEXPECTED_ERROR"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. Workflow services return these for
// every expected failure; anything else is treated as unexpected by the HTTP
// layer.
type Error struct {
	Kind    ErrorKind    `json:"type"`
	Message string       `json:"message"`
	Code    int          `json:"code"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewValidationError(msg string, fields ...FieldError) *Error {
	return &Error{Kind: ErrorKindValidation, Message: msg, Code: http.StatusBadRequest, Fields: fields}
}

func NewInvalidStatusError(msg string) *Error {
	return &Error{Kind: ErrorKindInvalidStatus, Message: msg, Code: http.StatusBadRequest}
}

func NewConflictError(msg string) *Error {
	return &Error{Kind: ErrorKindConflict, Message: msg, Code: http.StatusConflict}
}

func NewUnauthorizedError(msg string) *Error {
	return &Error{Kind: ErrorKindUnauthorized, Message: msg, Code: http.StatusUnauthorized}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: msg, Code: http.StatusNotFound}
}

func NewUnexpectedError(msg string) *Error {
	return &Error{Kind: ErrorKindUnexpected, Message: msg, Code: http.StatusInternalServerError}
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
