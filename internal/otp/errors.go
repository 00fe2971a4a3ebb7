package otp

import "errors"

var (
	ErrInvalidDigits    = errors.New("invalid number of digits")
	ErrInvalidPeriod    = errors.New("invalid totp period")
	ErrInvalidAlgorithm = errors.New("unsupported otp algorithm")
	ErrEmptySecret      = errors.New("otp secret must not be empty")
	ErrCodeTooLong      = errors.New("code has more digits than requested")
	ErrInvalidURI       = errors.New("invalid otpauth uri")
	ErrUnsupportedKind  = errors.New("unsupported otp kind")
)
