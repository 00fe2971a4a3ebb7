package kdf

import (
	"context"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 derives keys with PBKDF2-HMAC (RFC 8018).
type PBKDF2 struct {
	Length     KeyLength
	Iterations int
	Variant    Variant
}

// Derive implements [KeyDeriver]. An empty salt is rejected rather than
// silently producing a weak key.
func (p PBKDF2) Derive(_ context.Context, password, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}
	if p.Iterations <= 0 || p.Length <= 0 {
		return nil, fmt.Errorf("%w: pbkdf2 iterations=%d keyLength=%d", ErrInvalidParameters, p.Iterations, p.Length)
	}

	h, err := p.Variant.newHash()
	if err != nil {
		return nil, err
	}

	return pbkdf2.Key(password, salt, p.Iterations, int(p.Length), h), nil
}

// AlgorithmIdentifier implements [KeyDeriver].
func (p PBKDF2) AlgorithmIdentifier() string {
	return formatIdentifier("PBKDF2",
		intParam("keyLength", int(p.Length)),
		intParam("iterations", p.Iterations),
		param{key: "variant", value: string(p.Variant)},
	)
}

// OutputLength implements [KeyDeriver].
func (p PBKDF2) OutputLength() KeyLength {
	return p.Length
}
