// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-otp-vault application.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key derivation and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backup holds QR export settings.
	Backup Backup `envPrefix:"BACKUP_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KeyDeriverSignature names the key deriver used for new vault keys
	// (e.g. "secureV1"). Existing vaults always use the signature stored
	// with them.
	// Env: APP_KEY_DERIVER_SIGNATURE
	KeyDeriverSignature string `env:"KEY_DERIVER_SIGNATURE"`

	// DerivationTimeout bounds a single key derivation (e.g. "2m").
	// Env: APP_DERIVATION_TIMEOUT
	DerivationTimeout time.Duration `env:"DERIVATION_TIMEOUT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite database.
type DB struct {
	// DSN is the SQLite data source name, a file path or ":memory:".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Backup holds settings of the QR backup export.
type Backup struct {
	// MaxShardSize is the maximum number of container bytes per QR frame.
	// Env: BACKUP_MAX_SHARD_SIZE
	MaxShardSize int `env:"MAX_SHARD_SIZE"`

	// QRSize is the PNG edge length in pixels.
	// Env: BACKUP_QR_SIZE
	QRSize int `env:"QR_SIZE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Load builds, merges, and validates the application configuration from all
// available sources. args are the command-line arguments without the program
// name; the arguments left after global flags are returned.
func Load(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, b.rest, nil
}
