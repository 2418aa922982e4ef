package apperrors

import (
	"errors"
	"fmt"
)

// Domain failure kinds. Services return errors wrapping exactly one of
// these sentinels; controllers map the kind to an HTTP status with
// errors.Is and surface the wrapped message to the client.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrBusinessRule = errors.New("business rule violation")
)

type appError struct {
	kind    error
	message string
}

func (e *appError) Error() string {
	return e.message
}

func (e *appError) Unwrap() error {
	return e.kind
}

// New builds a domain error of the given kind with a user-facing message.
func New(kind error, message string) error {
	return &appError{kind: kind, message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(kind error, format string, args ...any) error {
	return &appError{kind: kind, message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) error {
	return New(ErrNotFound, message)
}

func Unauthorized(message string) error {
	return New(ErrUnauthorized, message)
}

func Conflict(message string) error {
	return New(ErrConflict, message)
}

func Expired(message string) error {
	return New(ErrExpired, message)
}

func BusinessRule(message string) error {
	return New(ErrBusinessRule, message)
}
