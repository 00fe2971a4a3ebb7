package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid entry id")
	ErrInvalidKind       = errors.New("invalid code kind")
	ErrEmptyAccountName  = errors.New("account name is required")
	ErrEmptySecret       = errors.New("secret is required")
	ErrInvalidAlgorithm  = errors.New("invalid algorithm")
	ErrInvalidDigits     = errors.New("invalid digits count")
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrUnexpectedCounter = errors.New("counter is only allowed for hotp codes")
	ErrCounterOutOfRange = errors.New("counter is out of range")
	ErrInvalidTimestamps = errors.New("invalid timestamps")
)
