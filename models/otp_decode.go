package models

import (
	"fmt"
	"time"
)

// OTPDecodeError enumerates the reasons a stored or backed-up OTP record
// cannot be turned into an OTPCode.
type OTPDecodeError int

const (
	DecodeErrorInvalidDigits OTPDecodeError = iota + 1
	DecodeErrorInvalidAlgorithm
	DecodeErrorInvalidSecretFormat
	DecodeErrorInvalidKind
	DecodeErrorMissingPeriod
	DecodeErrorMissingCounter
)

// Error implements the error interface.
func (e OTPDecodeError) Error() string {
	switch e {
	case DecodeErrorInvalidDigits:
		return "invalid digits count"
	case DecodeErrorInvalidAlgorithm:
		return "unknown algorithm"
	case DecodeErrorInvalidSecretFormat:
		return "unknown secret format"
	case DecodeErrorInvalidKind:
		return "unknown code kind"
	case DecodeErrorMissingPeriod:
		return "missing period for totp code"
	case DecodeErrorMissingCounter:
		return "missing counter for hotp code"
	default:
		return fmt.Sprintf("otp decode error %d", int(e))
	}
}

// OTPDecodeFailure reports a single record that was skipped while decoding
// a set of records.
type OTPDecodeFailure struct {
	// ID is the identifier of the skipped record.
	ID string

	// Err is the reason, usually an OTPDecodeError.
	Err error
}

// OTPRecord is the raw, unvalidated form of an OTP entry as it is persisted
// in the local store and in backups. Optional values are pointers so that a
// missing period or counter can be told apart from zero.
type OTPRecord struct {
	ID          string    `json:"id,omitempty"`
	Kind        string    `json:"kind"`
	Issuer      string    `json:"issuer,omitempty"`
	AccountName string    `json:"account_name"`
	Secret      []byte    `json:"secret"`
	Format      string    `json:"secret_format"`
	Algorithm   string    `json:"algorithm"`
	Digits      int       `json:"digits"`
	Period      *uint64   `json:"period,omitempty"`
	Counter     *uint64   `json:"counter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
