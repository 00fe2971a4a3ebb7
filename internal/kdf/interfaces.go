package kdf

//go:generate mockgen -source=interfaces.go -destination=../mock/key_deriver_mock.go -package=mock

import "context"

// KeyLength is the size of a derived key in bytes.
type KeyLength int

// KeyLength256 is a 256-bit key.
const KeyLength256 KeyLength = 32

// KeyDeriver derives a fixed-length symmetric key from a password and salt.
type KeyDeriver interface {
	// Derive stretches password and salt into a key of OutputLength bytes.
	// Implementations are deterministic: the same password and salt always
	// produce the same key.
	Derive(ctx context.Context, password, salt []byte) ([]byte, error)

	// AlgorithmIdentifier returns the canonical description of the algorithm
	// and all of its parameters, e.g.
	// "PBKDF2<keyLength=32;iterations=2000;variant=sha384>".
	AlgorithmIdentifier() string

	// OutputLength is the length of keys returned by Derive.
	OutputLength() KeyLength
}
