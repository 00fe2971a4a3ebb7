package otp

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-vault/models"
)

// TOTP computes time-based one-time passwords (RFC 6238) by feeding
// floor(epochSeconds / period) to an HOTP generator.
type TOTP struct {
	hotp   *HOTP
	period uint64
}

// NewTOTP validates the parameters and returns a generator.
func NewTOTP(secret []byte, algorithm models.OTPAlgorithm, digits int, period uint64) (*TOTP, error) {
	if period == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	h, err := NewHOTP(secret, algorithm, digits)
	if err != nil {
		return nil, err
	}
	return &TOTP{hotp: h, period: period}, nil
}

// Digits returns the configured code length.
func (g *TOTP) Digits() int {
	return g.hotp.Digits()
}

// Period returns the time step in seconds.
func (g *TOTP) Period() uint64 {
	return g.period
}

// Counter returns the time step containing epochSeconds.
func (g *TOTP) Counter(epochSeconds uint64) uint64 {
	return epochSeconds / g.period
}

// Code returns the code valid at epochSeconds.
func (g *TOTP) Code(epochSeconds uint64) uint64 {
	return g.hotp.Code(g.Counter(epochSeconds))
}

// CodeAt returns the code valid at t. Times before the Unix epoch use step 0.
func (g *TOTP) CodeAt(t time.Time) uint64 {
	return g.Code(epoch(t))
}

// Verify reports whether value is the code for the step containing epochSeconds.
func (g *TOTP) Verify(epochSeconds, value uint64) bool {
	return g.hotp.Verify(g.Counter(epochSeconds), value)
}

// RemainingSeconds returns how many seconds the code at epochSeconds stays valid.
func (g *TOTP) RemainingSeconds(epochSeconds uint64) uint64 {
	return g.period - epochSeconds%g.period
}

func epoch(t time.Time) uint64 {
	sec := t.Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}
