// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-otp-vault/internal/vaultkey"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated group
// is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := vaultkey.ParseSignature(cfg.App.KeyDeriverSignature); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}
	if cfg.App.DerivationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: derivation timeout must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}

	if cfg.Backup.MaxShardSize <= 0 || cfg.Backup.QRSize < 0 {
		errs = append(errs, fmt.Errorf("%w: max shard size %d, qr size %d",
			ErrInvalidBackupConfigs, cfg.Backup.MaxShardSize, cfg.Backup.QRSize))
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}
