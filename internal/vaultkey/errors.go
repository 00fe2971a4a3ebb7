package vaultkey

import "errors"

var (
	// ErrUnknownSignature is returned when a signature is not in the registry.
	ErrUnknownSignature = errors.New("unknown key deriver signature")
	// ErrEmptyPassword is returned when a key is requested for an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
