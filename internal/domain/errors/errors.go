// Package errors holds the closed set of expected, user-actionable auth
// failures. Handlers map these to HTTP statuses; anything not in this set
// is an internal failure and must not leak detail to the caller.
package errors

import "errors"

var (
	ErrInvalidEmail          = errors.New("invalid email address")
	ErrWeakPassword          = errors.New("password does not meet strength requirements")
	ErrEmailAlreadyExists    = errors.New("an account with this email already exists")
	ErrGamerTagAlreadyExists = errors.New("this gamer tag is already taken")
	ErrInvalidGamerTag       = errors.New("gamer tag must be 3-20 characters: letters, digits, underscore")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountNotVerified = errors.New("account email is not verified")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)
