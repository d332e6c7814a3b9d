package auth

import "errors"

var (
	ErrDuplicateIdentity  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("user is inactive")
	// ErrInvalidToken covers malformed, tampered and expired tokens as well as
	// tokens whose subject no longer exists.
	ErrInvalidToken = errors.New("could not validate credentials")
)
