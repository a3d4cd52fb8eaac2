package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDataProvided is returned when a request carries data that
	// cannot be processed (empty payload, malformed values).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordTooShort is returned at registration when the password does
	// not meet the minimum length requirement.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password does not match. The two cases are deliberately
	// indistinguishable so the response does not leak which emails are
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidCardType is returned when a card create or update request
	// carries a card type outside the allowed enumeration.
	ErrInvalidCardType = errors.New("invalid card type")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised error for every token
	// validation failure: expired, wrong issuer, bad signature, malformed.
	// Callers never need to inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// MissingFieldsError reports which required fields were absent from a create
// or update request. Handlers surface the field list to the client so the
// caller knows exactly what to fix.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface.
func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
