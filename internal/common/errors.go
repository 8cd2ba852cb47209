// Package common holds the error taxonomy shared by stores, services and handlers.
package common

import "errors"

var (
	// ErrValidation reports bad or missing input, or a write the store rejected.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports a lookup by id or email that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials reports a password that does not match the stored digest.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthMissing reports a protected call made without a token.
	ErrAuthMissing = errors.New("missing token")

	// ErrAuthInvalid reports a malformed, expired or badly signed token.
	ErrAuthInvalid = errors.New("invalid token")

	// ErrStore reports an underlying persistence failure.
	ErrStore = errors.New("store failure")
)
