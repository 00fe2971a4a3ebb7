package otp

import (
	"fmt"

	"github.com/MKhiriev/go-otp-vault/models"
)

// Generator produces codes for a moving factor: the counter for HOTP, the
// Unix time in seconds for TOTP.
type Generator interface {
	Code(factor uint64) uint64
	Verify(factor, value uint64) bool
	Digits() int
}

var (
	_ Generator = (*HOTP)(nil)
	_ Generator = (*TOTP)(nil)
)

// NewGenerator builds the generator matching a stored entry.
func NewGenerator(code models.OTPCode) (Generator, error) {
	switch code.Kind {
	case models.KindTOTP:
		return NewTOTP(code.Secret.Data, code.Algorithm, code.Digits, code.Period)
	case models.KindHOTP:
		return NewHOTP(code.Secret.Data, code.Algorithm, code.Digits)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, string(code.Kind))
	}
}
