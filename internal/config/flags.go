package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parsedFlags is the result of parsing the global command-line flags.
type parsedFlags struct {
	config  *StructuredConfig
	envFile string
	rest    []string
}

// parseFlags parses the global flags in args.
//
// Flags:
//
//	-signature key deriver signature for new vault keys
//	-derivation-timeout maximum duration of one key derivation (e.g. "2m")
//	-d database DSN
//	-max-shard-size maximum container bytes per QR frame
//	-qr-size QR PNG edge length in pixels
//	-log-level log level
//	-c/-config json file path with configs
//	-env-file .env file path
func parseFlags(args []string) (*parsedFlags, error) {
	var signature string
	var derivationTimeout time.Duration
	var databaseDSN string
	var maxShardSize int
	var qrSize int
	var logLevel string
	var jsonConfigPath string
	var envFile string

	fs := flag.NewFlagSet("vaultctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&signature, "signature", "", "Key deriver signature for new vault keys")
	fs.DurationVar(&derivationTimeout, "derivation-timeout", 0, "Key derivation timeout (e.g., 30s, 2m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxShardSize, "max-shard-size", 0, "Maximum bytes per backup frame")
	fs.IntVar(&qrSize, "qr-size", 0, "QR code size in pixels")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &parsedFlags{
		config: &StructuredConfig{
			App: App{
				KeyDeriverSignature: signature,
				DerivationTimeout:   derivationTimeout,
			},
			Storage: Storage{
				DB: DB{
					DSN: databaseDSN,
				},
			},
			Backup: Backup{
				MaxShardSize: maxShardSize,
				QRSize:       qrSize,
			},
			Log:          Log{Level: logLevel},
			JSONFilePath: jsonConfigPath,
		},
		envFile: envFile,
		rest:    fs.Args(),
	}, nil
}
