package kdf

import (
	"context"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scryptMaxMemory caps the memory a single scrypt stage may allocate.
// The secure profile (N=2^18, r=8) needs about 256 MiB.
const scryptMaxMemory = 1 << 30

// Scrypt derives keys with scrypt (RFC 7914).
type Scrypt struct {
	Length KeyLength

	// CostFactor is N, the CPU/memory cost. Must be a power of two > 1.
	CostFactor int

	// BlockSizeFactor is r.
	BlockSizeFactor int

	// ParallelizationFactor is p.
	ParallelizationFactor int
}

// Derive implements [KeyDeriver].
func (s Scrypt) Derive(_ context.Context, password, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	key, err := scrypt.Key(password, salt, s.CostFactor, s.BlockSizeFactor, s.ParallelizationFactor, int(s.Length))
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %w", ErrDerivationFailed, err)
	}

	return key, nil
}

func (s Scrypt) validate() error {
	n, r, p := s.CostFactor, s.BlockSizeFactor, s.ParallelizationFactor

	switch {
	case s.Length <= 0:
		return fmt.Errorf("%w: scrypt keyLength=%d", ErrInvalidParameters, s.Length)
	case n <= 1 || n&(n-1) != 0:
		return fmt.Errorf("%w: scrypt cost factor %d is not a power of two greater than one", ErrInvalidParameters, n)
	case r <= 0 || p <= 0:
		return fmt.Errorf("%w: scrypt r=%d p=%d must be positive", ErrInvalidParameters, r, p)
	case uint64(r)*uint64(p) >= 1<<30:
		return fmt.Errorf("%w: scrypt r*p too large", ErrInvalidParameters)
	case uint64(128)*uint64(r)*(uint64(n)+uint64(p)) > scryptMaxMemory:
		return fmt.Errorf("%w: scrypt N=%d r=%d exceeds memory limit", ErrInvalidParameters, n, r)
	}

	return nil
}

// AlgorithmIdentifier implements [KeyDeriver].
func (s Scrypt) AlgorithmIdentifier() string {
	return formatIdentifier("SCRYPT",
		intParam("keyLength", int(s.Length)),
		intParam("costFactor", s.CostFactor),
		intParam("blockSizeFactor", s.BlockSizeFactor),
		intParam("parallelizationFactor", s.ParallelizationFactor),
	)
}

// OutputLength implements [KeyDeriver].
func (s Scrypt) OutputLength() KeyLength {
	return s.Length
}
