package vaultkey

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-otp-vault/internal/kdf"
)

// SaltLength is the size of salts generated by CreateEncryptionKey.
const SaltLength = 48

// DerivedEncryptionKey is a vault encryption key together with everything
// except the password needed to derive it again.
type DerivedEncryptionKey struct {
	Key       []byte
	Salt      []byte
	Signature Signature
}

// VaultKeyDeriver is a named, fixed key derivation configuration.
// Values are obtained from [Lookup] and are safe for concurrent use.
type VaultKeyDeriver struct {
	signature Signature
	deriver   kdf.KeyDeriver
}

// New pairs a signature with a deriver outside the registry. Keys derived
// with it can only be recreated by a process that builds the same pairing.
func New(signature Signature, deriver kdf.KeyDeriver) VaultKeyDeriver {
	return VaultKeyDeriver{signature: signature, deriver: deriver}
}

// Signature returns the registry name of the deriver.
func (v VaultKeyDeriver) Signature() Signature {
	return v.signature
}

// AlgorithmIdentifier returns the canonical identifier of the underlying chain.
func (v VaultKeyDeriver) AlgorithmIdentifier() string {
	return v.deriver.AlgorithmIdentifier()
}

// CreateEncryptionKey derives a key for a new vault from password and a fresh
// random salt.
func (v VaultKeyDeriver) CreateEncryptionKey(ctx context.Context, password []byte) (DerivedEncryptionKey, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return DerivedEncryptionKey{}, fmt.Errorf("generate salt: %w", err)
	}

	return v.RecreateEncryptionKey(ctx, password, salt)
}

// RecreateEncryptionKey derives the key of an existing vault from password
// and the salt stored with it.
func (v VaultKeyDeriver) RecreateEncryptionKey(ctx context.Context, password, salt []byte) (DerivedEncryptionKey, error) {
	if v.deriver == nil {
		return DerivedEncryptionKey{}, fmt.Errorf("%w: zero value deriver", ErrUnknownSignature)
	}
	if len(password) == 0 {
		return DerivedEncryptionKey{}, ErrEmptyPassword
	}

	key, err := v.deriver.Derive(ctx, password, salt)
	if err != nil {
		return DerivedEncryptionKey{}, fmt.Errorf("derive key with %s: %w", v.signature, err)
	}

	return DerivedEncryptionKey{
		Key:       key,
		Salt:      append([]byte(nil), salt...),
		Signature: v.signature,
	}, nil
}
