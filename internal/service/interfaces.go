package service

import (
	"context"

	"github.com/MKhiriev/go-otp-vault/internal/backup"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
	"github.com/MKhiriev/go-otp-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// KeyService derives vault encryption keys under a time limit.
type KeyService interface {
	// CreateEncryptionKey derives a key for a new vault with the configured
	// signature and a fresh salt.
	CreateEncryptionKey(ctx context.Context, password []byte) (vaultkey.DerivedEncryptionKey, error)
	// RecreateEncryptionKey derives the key of an existing vault from the
	// signature and salt stored with it.
	RecreateEncryptionKey(ctx context.Context, signature vaultkey.Signature, password, salt []byte) (vaultkey.DerivedEncryptionKey, error)
}

// OTPService manages stored OTP entries and renders their codes.
type OTPService interface {
	AddFromURI(ctx context.Context, uri string) (models.OTPCode, error)
	List(ctx context.Context) ([]models.OTPCode, []models.OTPDecodeFailure, error)
	Preview(ctx context.Context, id string) (models.OTPPreview, error)
	// NextHOTPCode renders the code at the stored counter and persists the
	// incremented counter, so that no HOTP code is shown twice.
	NextHOTPCode(ctx context.Context, id string) (models.OTPPreview, error)
	Delete(ctx context.Context, id string) error
}

// BackupService exports all entries as QR frames and restores them.
type BackupService interface {
	Export(ctx context.Context, password []byte) ([]backup.Frame, error)
	NewImportSession() *backup.ImportSession
	// Import decrypts a completed session and saves every restored entry
	// under a new ID. Items that do not decode are reported, not saved.
	Import(ctx context.Context, session *backup.ImportSession, password []byte) ([]models.OTPCode, []models.OTPDecodeFailure, error)
}

// IDGenerator produces IDs for new entries.
type IDGenerator interface {
	Generate() string
}
