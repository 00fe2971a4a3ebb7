package service

import (
	"fmt"

	"github.com/MKhiriev/go-otp-vault/internal/backup"
	"github.com/MKhiriev/go-otp-vault/internal/config"
	"github.com/MKhiriev/go-otp-vault/internal/crypto"
	"github.com/MKhiriev/go-otp-vault/internal/store"
	"github.com/MKhiriev/go-otp-vault/internal/utils"
	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
)

type Services struct {
	KeyService    KeyService
	OTPService    OTPService
	BackupService BackupService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig) (*Services, error) {
	signature, err := vaultkey.ParseSignature(cfg.App.KeyDeriverSignature)
	if err != nil {
		return nil, fmt.Errorf("key deriver signature: %w", err)
	}

	ids := utils.NewUUIDGenerator()
	keys := NewKeyService(signature, cfg.App.DerivationTimeout)

	return &Services{
		KeyService: keys,
		OTPService: NewOTPService(storages.OTPCodeRepository, ids),
		BackupService: NewBackupService(storages.OTPCodeRepository, ids, keys, crypto.NewVaultCipher(),
			backup.WithMaxShardSize(cfg.Backup.MaxShardSize),
			backup.WithQRSize(cfg.Backup.QRSize),
		),
	}, nil
}
