// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vaultkey

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-otp-vault/internal/kdf"
)

// registry is built once and never modified.
var registry = map[Signature]VaultKeyDeriver{
	SignatureFastV1: {
		signature: SignatureFastV1,
		deriver: kdf.NewCombination(
			kdf.PBKDF2{Length: kdf.KeyLength256, Iterations: 2_000, Variant: kdf.VariantSHA384},
			kdf.HKDF{Length: kdf.KeyLength256, Variant: kdf.VariantSHA3SHA512},
			kdf.Scrypt{Length: kdf.KeyLength256, CostFactor: 1 << 6, BlockSizeFactor: 4, ParallelizationFactor: 1},
		),
	},
	SignatureSecureV1: {
		signature: SignatureSecureV1,
		deriver: kdf.NewCombination(
			kdf.PBKDF2{Length: kdf.KeyLength256, Iterations: 5_452_351, Variant: kdf.VariantSHA384},
			kdf.HKDF{Length: kdf.KeyLength256, Variant: kdf.VariantSHA3SHA512},
			kdf.Scrypt{Length: kdf.KeyLength256, CostFactor: 1 << 18, BlockSizeFactor: 8, ParallelizationFactor: 1},
		),
	},
	SignatureTesting: {
		signature: SignatureTesting,
		deriver: kdf.NewCombination(
			kdf.PBKDF2{Length: kdf.KeyLength256, Iterations: 1_000, Variant: kdf.VariantSHA384},
			kdf.HKDF{Length: kdf.KeyLength256, Variant: kdf.VariantSHA3SHA512},
			kdf.Scrypt{Length: kdf.KeyLength256, CostFactor: 1 << 4, BlockSizeFactor: 1, ParallelizationFactor: 1},
		),
	},
	SignatureFailing: {
		signature: SignatureFailing,
		deriver:   failingDeriver{},
	},
}

// Lookup returns the deriver registered for sig.
func Lookup(sig Signature) (VaultKeyDeriver, error) {
	d, ok := registry[sig]
	if !ok {
		return VaultKeyDeriver{}, fmt.Errorf("%w: %q", ErrUnknownSignature, string(sig))
	}
	return d, nil
}

// Signatures lists every registered signature in a stable order.
func Signatures() []Signature {
	sigs := make([]Signature, 0, len(registry))
	for sig := range registry {
		sigs = append(sigs, sig)
	}
	slices.Sort(sigs)
	return sigs
}

// failingDeriver backs SignatureFailing.
type failingDeriver struct{}

func (failingDeriver) Derive(context.Context, []byte, []byte) ([]byte, error) {
	return nil, fmt.Errorf("%w: failing key deriver", kdf.ErrDerivationFailed)
}

func (failingDeriver) AlgorithmIdentifier() string {
	return "FAILING<>"
}

func (failingDeriver) OutputLength() kdf.KeyLength {
	return kdf.KeyLength256
}
