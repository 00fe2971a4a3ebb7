package config

import "time"

const (
	DefaultKeyDeriverSignature = "secureV1"
	DefaultDerivationTimeout   = 2 * time.Minute
	DefaultDSN                 = "otp-vault.db"
	DefaultMaxShardSize        = 1024
	DefaultQRSize              = 512
	DefaultLogLevel            = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KeyDeriverSignature: DefaultKeyDeriverSignature,
			DerivationTimeout:   DefaultDerivationTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Backup: Backup{
			MaxShardSize: DefaultMaxShardSize,
			QRSize:       DefaultQRSize,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
