package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-otp-vault/internal/backup"
	"github.com/MKhiriev/go-otp-vault/internal/crypto"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/MKhiriev/go-otp-vault/internal/otp"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/internal/validators"
	"github.com/MKhiriev/go-otp-vault/models"
)

type backupService struct {
	repo      store.OTPCodeRepository
	ids       IDGenerator
	keys      KeyService
	cipher    crypto.VaultCipher
	exporter  *backup.Exporter
	validator validators.Validator
	now       func() time.Time
}

func NewBackupService(repo store.OTPCodeRepository, ids IDGenerator, keys KeyService, c crypto.VaultCipher, opts ...backup.ExporterOption) BackupService {
	return &backupService{
		repo:      repo,
		ids:       ids,
		keys:      keys,
		cipher:    c,
		exporter:  backup.NewExporter(keys, c, opts...),
		validator: validators.NewOTPCodeValidator(),
		now:       time.Now,
	}
}

func (s *backupService) Export(ctx context.Context, password []byte) ([]backup.Frame, error) {
	log := logger.FromContext(ctx)

	codes, failures, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list otp codes: %w", err)
	}
	for _, f := range failures {
		log.Warn().Str("func", "backupService.Export").Str("id", f.ID).AnErr("reason", f.Err).
			Msg("entry left out of backup")
	}

	items := make([]models.OTPRecord, len(codes))
	for i, code := range codes {
		items[i] = otp.EncodeRecord(code)
	}

	frames, err := s.exporter.Export(ctx, models.VaultBackup{
		Version: models.BackupVersion,
		Created: s.now().UTC(),
		Items:   items,
	}, password)
	if err != nil {
		log.Err(err).Str("func", "backupService.Export").Msg("failed to export backup")
		return nil, err
	}

	log.Info().Str("func", "backupService.Export").
		Int("entries", len(items)).
		Int("frames", len(frames)).
		Msg("backup exported")
	return frames, nil
}

func (s *backupService) NewImportSession() *backup.ImportSession {
	return backup.NewImportSession(s.keys, s.cipher)
}

func (s *backupService) Import(ctx context.Context, session *backup.ImportSession, password []byte) ([]models.OTPCode, []models.OTPDecodeFailure, error) {
	log := logger.FromContext(ctx)

	vb, err := session.Decrypt(ctx, password)
	if err != nil {
		return nil, nil, err
	}

	var (
		restored []models.OTPCode
		failures []models.OTPDecodeFailure
	)
	now := s.now().UTC()
	for _, item := range vb.Items {
		code, err := otp.DecodeRecord(item)
		if err == nil {
			code.ID = s.ids.Generate()
			code.CreatedAt, code.UpdatedAt = now, now
			err = s.validator.Validate(ctx, code)
		}
		if err != nil {
			log.Warn().Str("func", "backupService.Import").Str("id", item.ID).AnErr("reason", err).
				Msg("skipping backup item that cannot be decoded")
			failures = append(failures, models.OTPDecodeFailure{ID: item.ID, Err: err})
			continue
		}

		if err := s.repo.Save(ctx, code); err != nil {
			log.Err(err).Str("func", "backupService.Import").Str("id", code.ID).Msg("failed to save restored entry")
			return restored, failures, fmt.Errorf("save restored entry: %w", err)
		}
		restored = append(restored, code)
	}

	return restored, failures, nil
}
