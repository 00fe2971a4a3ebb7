package crypto

import (
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/MKhiriev/go-otp-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher seals vault payloads with a derived encryption key.
// It knows nothing about storage, transport or passwords; the key arrives
// already derived together with the salt and signature used for it.
type VaultCipher interface {
	// Encrypt serializes plaintext to JSON and encrypts it with AES-256-GCM.
	// The returned container records the GCM nonce and the key's salt and
	// signature so that the key can be recreated from the password alone.
	Encrypt(plaintext any, key vaultkey.DerivedEncryptionKey) (models.EncryptedVault, error)

	// Decrypt opens vault with key and unmarshals the JSON payload into
	// target, which must be a non-nil pointer. A wrong key or tampered data
	// yields ErrDecryptionFailed.
	Decrypt(vault models.EncryptedVault, key vaultkey.DerivedEncryptionKey, target any) error
}
