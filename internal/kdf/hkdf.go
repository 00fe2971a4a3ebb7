package kdf

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF derives keys with HKDF extract-and-expand (RFC 5869).
// No info string is bound into the output.
type HKDF struct {
	Length  KeyLength
	Variant Variant
}

// Derive implements [KeyDeriver]. password is used as the input keying
// material and salt as the extract salt.
func (h HKDF) Derive(_ context.Context, password, salt []byte) ([]byte, error) {
	if h.Length <= 0 {
		return nil, fmt.Errorf("%w: hkdf keyLength=%d", ErrInvalidParameters, h.Length)
	}

	newHash, err := h.Variant.newHash()
	if err != nil {
		return nil, err
	}

	key := make([]byte, h.Length)
	if _, err := io.ReadFull(hkdf.New(newHash, password, salt, nil), key); err != nil {
		return nil, fmt.Errorf("%w: hkdf: %w", ErrDerivationFailed, err)
	}

	return key, nil
}

// AlgorithmIdentifier implements [KeyDeriver].
func (h HKDF) AlgorithmIdentifier() string {
	return formatIdentifier("HKDF",
		intParam("keyLength", int(h.Length)),
		param{key: "variant", value: string(h.Variant)},
	)
}

// OutputLength implements [KeyDeriver].
func (h HKDF) OutputLength() KeyLength {
	return h.Length
}
