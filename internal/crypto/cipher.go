// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/MKhiriev/go-otp-vault/models"
)

const keyLength = 32

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	random io.Reader
}

// NewVaultCipher constructs a [VaultCipher] drawing nonces from the OS CSPRNG.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{random: rand.Reader}
}

// Encrypt implements [VaultCipher].
func (c *vaultCipher) Encrypt(plaintext any, key vaultkey.DerivedEncryptionKey) (models.EncryptedVault, error) {
	// 1. Serialize to JSON
	data, err := json.Marshal(plaintext)
	if err != nil {
		return models.EncryptedVault{}, fmt.Errorf("marshal data: %w", err)
	}

	// 2. Build AES-GCM cipher from the derived key
	gcm, err := newGCM(key.Key)
	if err != nil {
		return models.EncryptedVault{}, err
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return models.EncryptedVault{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedVault{
		Version:         models.EncryptedVaultVersion,
		Data:            gcm.Seal(nil, nonce, data, nil),
		EncryptionIV:    nonce,
		KeygenSalt:      append([]byte(nil), key.Salt...),
		KeygenSignature: string(key.Signature),
	}, nil
}

// Decrypt implements [VaultCipher].
func (c *vaultCipher) Decrypt(vault models.EncryptedVault, key vaultkey.DerivedEncryptionKey, target any) error {
	if vault.Version != models.EncryptedVaultVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, vault.Version)
	}

	gcm, err := newGCM(key.Key)
	if err != nil {
		return err
	}
	if len(vault.EncryptionIV) != gcm.NonceSize() {
		return fmt.Errorf("%w: nonce must be %d bytes", ErrDecryptionFailed, gcm.NonceSize())
	}

	// An authentication failure almost always means a wrong password.
	plaintext, err := gcm.Open(nil, vault.EncryptionIV, vault.Data, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
