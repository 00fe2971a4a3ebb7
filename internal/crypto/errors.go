package crypto

import "errors"

var (
	ErrDecryptionFailed   = errors.New("vault decryption failed")
	ErrInvalidKey         = errors.New("encryption key must be 32 bytes")
	ErrUnsupportedVersion = errors.New("unsupported vault version")
)
