package domain

import "errors"

// Outcome kinds for the login and password-rotation flows. Lower-level
// failures are mapped onto exactly one of these before leaving the usecase.
var (
	ErrMalformedRequest   = errors.New("malformed request")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStore              = errors.New("credential store failure")
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrVerificationFailed = errors.New("password verification failed")
	ErrUpdateFailed       = errors.New("password update failed")
	ErrSigning            = errors.New("session token signing failed")
)

// MaxPasswordBytes is the longest password bcrypt accepts. The limit is in
// bytes, not characters.
const MaxPasswordBytes = 72
