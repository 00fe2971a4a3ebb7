package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-otp-vault/internal/config"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/models"
)

// interleavingRepo lets another writer advance the counter right after the
// first read, as a second vaultctl process would.
type interleavingRepo struct {
	store.OTPCodeRepository
	between func()
}

func (r *interleavingRepo) Get(ctx context.Context, id string) (models.OTPCode, error) {
	code, err := r.OTPCodeRepository.Get(ctx, id)
	if r.between != nil {
		between := r.between
		r.between = nil
		between()
	}
	return code, err
}

func TestOTPService_NextHOTPCode_ConcurrentWritersNeverShareACode(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	code := rfcHOTP(0)
	code.CreatedAt, code.UpdatedAt = fixedNow, fixedNow
	require.NoError(t, storages.OTPCodeRepository.Save(ctx, code))

	other := NewOTPService(storages.OTPCodeRepository, nil)
	var otherPreview models.OTPPreview
	repo := &interleavingRepo{
		OTPCodeRepository: storages.OTPCodeRepository,
		between: func() {
			var otherErr error
			otherPreview, otherErr = other.NextHOTPCode(ctx, "hotp-1")
			require.NoError(t, otherErr)
		},
	}
	svc := NewOTPService(repo, nil)

	preview, err := svc.NextHOTPCode(ctx, "hotp-1")
	require.NoError(t, err)

	assert.Equal(t, "755224", otherPreview.Code)
	assert.Equal(t, "287082", preview.Code)
	assert.Equal(t, uint64(1), preview.Counter)

	stored, err := storages.OTPCodeRepository.Get(ctx, "hotp-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stored.Counter)
}
