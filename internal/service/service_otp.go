package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/otp"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/internal/validators"
	"github.com/MKhiriev/go-otp-vault/models"
)

// maxCounterAttempts bounds how often NextHOTPCode re-reads a counter that
// another writer advanced in the meantime.
const maxCounterAttempts = 5

type otpService struct {
	repo      store.OTPCodeRepository
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
}

func NewOTPService(repo store.OTPCodeRepository, ids IDGenerator) OTPService {
	return &otpService{
		repo:      repo,
		ids:       ids,
		validator: validators.NewOTPCodeValidator(),
		now:       time.Now,
	}
}

func (s *otpService) AddFromURI(ctx context.Context, uri string) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	code, err := otp.ParseURI(uri)
	if err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now().UTC()
	code.ID = s.ids.Generate()
	code.CreatedAt, code.UpdatedAt = now, now

	if err := s.validator.Validate(ctx, code); err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := s.repo.Save(ctx, code); err != nil {
		log.Err(err).Str("func", "otpService.AddFromURI").Str("id", code.ID).Msg("failed to save otp code")
		return models.OTPCode{}, fmt.Errorf("save otp code: %w", err)
	}

	return code, nil
}

func (s *otpService) List(ctx context.Context) ([]models.OTPCode, []models.OTPDecodeFailure, error) {
	return s.repo.List(ctx)
}

func (s *otpService) Preview(ctx context.Context, id string) (models.OTPPreview, error) {
	code, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.OTPPreview{}, err
	}

	return otp.Preview(code, s.now())
}

func (s *otpService) NextHOTPCode(ctx context.Context, id string) (models.OTPPreview, error) {
	log := logger.FromContext(ctx)

	for attempt := 1; ; attempt++ {
		code, err := s.repo.Get(ctx, id)
		if err != nil {
			return models.OTPPreview{}, err
		}
		if code.Kind != models.KindHOTP {
			return models.OTPPreview{}, fmt.Errorf("%w: %s", ErrNotHOTP, id)
		}
		if code.Counter >= otp.MaxCounter {
			return models.OTPPreview{}, fmt.Errorf("%w: %s", ErrCounterExhausted, id)
		}

		preview, err := otp.Preview(code, s.now())
		if err != nil {
			return models.OTPPreview{}, err
		}

		// the code is only handed out once its counter has been consumed
		err = s.repo.UpdateCounter(ctx, id, code.Counter, code.Counter+1)
		if err == nil {
			return preview, nil
		}
		if errors.Is(err, store.ErrCounterConflict) && attempt < maxCounterAttempts {
			log.Debug().Str("func", "otpService.NextHOTPCode").Str("id", id).Int("attempt", attempt).Msg("hotp counter moved, retrying")
			continue
		}

		log.Err(err).Str("func", "otpService.NextHOTPCode").Str("id", id).Msg("failed to persist hotp counter")
		return models.OTPPreview{}, fmt.Errorf("persist hotp counter: %w", err)
	}
}

func (s *otpService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
