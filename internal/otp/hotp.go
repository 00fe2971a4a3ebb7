package otp

import (
	"crypto/hmac"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"github.com/MKhiriev/go-otp-vault/models"
)

const (
	// MinDigits and MaxDigits bound the code length. Truncated values are
	// 31-bit, so more than ten digits would only add leading zeros.
	MinDigits = 1
	MaxDigits = 10

	// MaxCounter is the largest counter or period the local store can hold.
	MaxCounter uint64 = math.MaxInt64
)

var pow10 = [...]uint64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000, 10_000_000_000}

// HOTP computes counter-based one-time passwords (RFC 4226).
type HOTP struct {
	secret  []byte
	newHash func() hash.Hash
	digits  int
}

// NewHOTP validates the parameters and returns a generator. The secret is copied.
func NewHOTP(secret []byte, algorithm models.OTPAlgorithm, digits int) (*HOTP, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if digits < MinDigits || digits > MaxDigits {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}
	h, err := hashFor(algorithm)
	if err != nil {
		return nil, err
	}

	return &HOTP{
		secret:  append([]byte(nil), secret...),
		newHash: h,
		digits:  digits,
	}, nil
}

// Digits returns the configured code length.
func (g *HOTP) Digits() int {
	return g.digits
}

// Code returns the code for counter: HMAC over the big-endian counter,
// dynamic truncation to 31 bits, then reduction modulo 10^digits.
func (g *HOTP) Code(counter uint64) uint64 {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(g.newHash, g.secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0F
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF

	return uint64(truncated) % pow10[g.digits]
}

// Verify reports whether value is the code for counter. The comparison does
// not branch on the expected code.
func (g *HOTP) Verify(counter, value uint64) bool {
	if value > math.MaxUint32 {
		return false
	}
	return subtle.ConstantTimeEq(int32(uint32(g.Code(counter))), int32(uint32(value))) == 1
}
