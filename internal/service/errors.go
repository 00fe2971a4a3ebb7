package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNotHOTP             = errors.New("entry is not an HOTP entry")
	ErrCounterExhausted    = errors.New("hotp counter cannot be advanced any further")
)
