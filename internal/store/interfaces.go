package store

import (
	"context"

	"github.com/MKhiriev/go-otp-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OTPCodeRepository persists OTP entries in the local database.
type OTPCodeRepository interface {
	// Save inserts a new entry.
	Save(ctx context.Context, code models.OTPCode) error
	// Get returns one entry. A stored record that no longer decodes is
	// reported with its models.OTPDecodeError.
	Get(ctx context.Context, id string) (models.OTPCode, error)
	// List returns every entry that decodes, plus one failure per record
	// that does not. A bad record never aborts the listing.
	List(ctx context.Context) ([]models.OTPCode, []models.OTPDecodeFailure, error)
	// UpdateCounter replaces the HOTP counter of an entry with next, but only
	// while the stored value still equals current. Otherwise it returns
	// ErrCounterConflict, or ErrOTPCodeNotFound if there is no such entry.
	UpdateCounter(ctx context.Context, id string, current, next uint64) error
	// Delete removes an entry.
	Delete(ctx context.Context, id string) error
}
