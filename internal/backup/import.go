package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-otp-vault/internal/crypto"
	"github.com/MKhiriev/go-otp-vault/internal/shard"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/MKhiriev/go-otp-vault/models"
)

// Progress reports how far an import session has come.
type Progress struct {
	Seen  int
	Total int
	Ready bool
}

// ImportSession collects scanned frames of one export and decrypts the
// reassembled vault. It is not safe for concurrent use.
type ImportSession struct {
	keys    KeyProvider
	cipher  crypto.VaultCipher
	decoder *shard.Decoder
}

// NewImportSession starts an empty session.
func NewImportSession(keys KeyProvider, c crypto.VaultCipher) *ImportSession {
	return &ImportSession{
		keys:    keys,
		cipher:  c,
		decoder: shard.NewDecoder(),
	}
}

// Add records one frame. Frames of another export are ignored.
func (s *ImportSession) Add(frame []byte) (Progress, error) {
	if err := s.decoder.Add(frame); err != nil {
		return s.Progress(), err
	}
	return s.Progress(), nil
}

// Progress returns the current collection state.
func (s *ImportSession) Progress() Progress {
	seen, total := s.decoder.Progress()
	return Progress{Seen: seen, Total: total, Ready: s.decoder.IsReadyToDecode()}
}

// Vault reassembles the encrypted container. It returns shard.ErrIncomplete
// until every frame was added and ErrUnrecoverable when the reassembled
// bytes are not a vault container.
func (s *ImportSession) Vault() (models.EncryptedVault, error) {
	data, err := s.decoder.DecodeData()
	if err != nil {
		return models.EncryptedVault{}, err
	}

	var vault models.EncryptedVault
	if err := json.Unmarshal(data, &vault); err != nil {
		return models.EncryptedVault{}, fmt.Errorf("%w: %w", ErrUnrecoverable, err)
	}
	if _, err := vaultkey.ParseSignature(vault.KeygenSignature); err != nil {
		return models.EncryptedVault{}, fmt.Errorf("%w: %w", ErrUnrecoverable, err)
	}
	if len(vault.KeygenSalt) == 0 || len(vault.EncryptionIV) == 0 {
		return models.EncryptedVault{}, fmt.Errorf("%w: missing key material", ErrUnrecoverable)
	}
	return vault, nil
}

// Decrypt recreates the key from password and the container's signature and
// salt, then opens the backup.
func (s *ImportSession) Decrypt(ctx context.Context, password []byte) (models.VaultBackup, error) {
	vault, err := s.Vault()
	if err != nil {
		return models.VaultBackup{}, err
	}

	key, err := s.keys.RecreateEncryptionKey(ctx, vaultkey.Signature(vault.KeygenSignature), password, vault.KeygenSalt)
	if err != nil {
		return models.VaultBackup{}, fmt.Errorf("recreate encryption key: %w", err)
	}
	defer clear(key.Key)

	var backup models.VaultBackup
	if err := s.cipher.Decrypt(vault, key, &backup); err != nil {
		return models.VaultBackup{}, err
	}
	if backup.Version != models.BackupVersion {
		return models.VaultBackup{}, fmt.Errorf("%w: %q", ErrUnsupportedBackup, backup.Version)
	}
	return backup, nil
}

// Reset discards collected frames.
func (s *ImportSession) Reset() {
	s.decoder.Reset()
}
