package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Variant selects the hash function a PBKDF2 or HKDF stage is built on.
type Variant string

const (
	VariantSHA256     Variant = "sha256"
	VariantSHA384     Variant = "sha384"
	VariantSHA512     Variant = "sha512"
	VariantSHA3SHA512 Variant = "sha3_sha512"
)

// newHash returns the hash constructor for v.
func (v Variant) newHash() (func() hash.Hash, error) {
	switch v {
	case VariantSHA256:
		return sha256.New, nil
	case VariantSHA384:
		return sha512.New384, nil
	case VariantSHA512:
		return sha512.New, nil
	case VariantSHA3SHA512:
		return sha3.New512, nil
	default:
		return nil, fmt.Errorf("%w: unknown hash variant %q", ErrInvalidParameters, string(v))
	}
}
