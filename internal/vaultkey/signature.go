package vaultkey

import "fmt"

// Signature names one fixed key derivation configuration.
type Signature string

const (
	// SignatureFastV1 is a quick profile for low-value data and interactive checks.
	SignatureFastV1 Signature = "fastV1"
	// SignatureSecureV1 is the default profile for vaults. It takes tens of
	// seconds and about 256 MiB of memory on mobile-class hardware.
	SignatureSecureV1 Signature = "secureV1"
	// SignatureTesting is a cheap profile for tests.
	SignatureTesting Signature = "testing"
	// SignatureFailing always fails. It exercises error paths.
	SignatureFailing Signature = "failing"
)

// ParseSignature validates s against the registry.
func ParseSignature(s string) (Signature, error) {
	sig := Signature(s)
	if _, ok := registry[sig]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSignature, s)
	}
	return sig, nil
}

// String implements fmt.Stringer.
func (s Signature) String() string {
	return string(s)
}
