package backup

import (
	"context"

	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

// KeyProvider derives vault encryption keys from passwords.
type KeyProvider interface {
	// CreateEncryptionKey derives a key for a new vault with a fresh salt.
	CreateEncryptionKey(ctx context.Context, password []byte) (vaultkey.DerivedEncryptionKey, error)
	// RecreateEncryptionKey derives the key of an existing vault.
	RecreateEncryptionKey(ctx context.Context, signature vaultkey.Signature, password, salt []byte) (vaultkey.DerivedEncryptionKey, error)
}
