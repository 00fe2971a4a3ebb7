package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/MKhiriev/go-otp-vault/models"
)

// ParseAlgorithm accepts the algorithm names used in otpauth URIs, ignoring
// case. An empty string selects SHA1.
func ParseAlgorithm(s string) (models.OTPAlgorithm, error) {
	switch strings.ToUpper(s) {
	case "", string(models.AlgorithmSHA1):
		return models.AlgorithmSHA1, nil
	case string(models.AlgorithmSHA256):
		return models.AlgorithmSHA256, nil
	case string(models.AlgorithmSHA512):
		return models.AlgorithmSHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
	}
}

func hashFor(a models.OTPAlgorithm) (func() hash.Hash, error) {
	switch a {
	case models.AlgorithmSHA1:
		return sha1.New, nil
	case models.AlgorithmSHA256:
		return sha256.New, nil
	case models.AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(a))
	}
}
