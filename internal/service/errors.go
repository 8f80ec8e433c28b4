package service

import "errors"

// Sentinel errors forming the failure taxonomy exposed to the transport
// layer. Handlers translate these with errors.Is; anything outside the
// taxonomy is treated as an internal error.
var (
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials indicates a login with an unknown email or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail indicates a registration with an already-used email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound indicates a resource that is absent or not owned by the
	// requesting user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")
)
