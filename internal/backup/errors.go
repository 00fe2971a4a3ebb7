package backup

import "errors"

var (
	// ErrUnrecoverable is returned when all shards were collected but the
	// reassembled payload is not a usable vault container.
	ErrUnrecoverable = errors.New("backup payload is unrecoverable")
	// ErrUnsupportedBackup is returned when the decrypted payload has an
	// unknown format version.
	ErrUnsupportedBackup = errors.New("unsupported backup version")
)
