// Package apperr defines the error taxonomy shared by the services and
// mapped to HTTP statuses at the handler boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unknown Kind = iota
	InvalidInput
	Conflict
	NotFound
	Unauthenticated
	InvalidToken
	ExpiredToken
	Storage
)

var kindStatus = map[Kind]int{
	Unknown:         http.StatusInternalServerError,
	InvalidInput:    http.StatusBadRequest,
	Conflict:        http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Unauthenticated: http.StatusUnauthorized,
	InvalidToken:    http.StatusUnauthorized,
	ExpiredToken:    http.StatusUnauthorized,
	Storage:         http.StatusBadGateway,
}

func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error. Errors outside the taxonomy are Unknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unknown
}

// StatusMessage returns the HTTP status and client-facing message for err.
// Unknown errors get a generic message so internals never leak.
func StatusMessage(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Status(), appErr.Message
	}
	return http.StatusInternalServerError, "something went wrong"
}
