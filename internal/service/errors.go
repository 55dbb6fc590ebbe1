package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by RedirectService matches exactly one of
// these with errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence failure")
	ErrExhausted   = errors.New("exhausted")
)

var (
	ErrNoURL             = newError(ErrValidation, "no URL submitted")
	ErrMalformedURL      = newError(ErrValidation, "malformed URL")
	ErrInvalidURL        = newError(ErrValidation, "not a valid URL")
	ErrNoID              = newError(ErrValidation, "no ID provided")
	ErrInvalidID         = newError(ErrValidation, "not a valid ID")
	ErrNoValue           = newError(ErrValidation, "no value provided")
	ErrInvalidDomain     = newError(ErrValidation, "not a valid domain")
	ErrDomainBlacklisted = newError(ErrConflict, "domain blacklisted")
	ErrURLBlacklisted    = newError(ErrForbidden, "URL blacklisted")
	ErrRedirectDisabled  = newError(ErrForbidden, "redirect disabled")
	ErrDomainBlocked     = newError(ErrForbidden, "domain blacklisted")
	ErrRedirectNotFound  = newError(ErrNotFound, "redirect not found")
	ErrIDSpaceExhausted  = newError(ErrExhausted, "could not allocate an identifier")
)

// Error is a client-facing failure. Message is safe to return to callers.
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// persistence marks a store failure as a server-side fault.
func persistence(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrPersistence, op, err)
}
