package otp

import (
	"github.com/MKhiriev/go-otp-vault/models"
)

// DecodeRecord validates a raw stored or backed-up record. Failures are
// reported as models.OTPDecodeError so callers can skip the record and carry
// on with its siblings.
func DecodeRecord(r models.OTPRecord) (models.OTPCode, error) {
	code := models.OTPCode{
		ID:          r.ID,
		Issuer:      r.Issuer,
		AccountName: r.AccountName,
		Digits:      r.Digits,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	switch kind := models.OTPKind(r.Kind); kind {
	case models.KindTOTP:
		if r.Period == nil || *r.Period == 0 {
			return models.OTPCode{}, models.DecodeErrorMissingPeriod
		}
		code.Kind, code.Period = kind, *r.Period
	case models.KindHOTP:
		if r.Counter == nil {
			return models.OTPCode{}, models.DecodeErrorMissingCounter
		}
		code.Kind, code.Counter = kind, *r.Counter
	default:
		return models.OTPCode{}, models.DecodeErrorInvalidKind
	}

	if models.SecretFormat(r.Format) != models.SecretFormatBase32 {
		return models.OTPCode{}, models.DecodeErrorInvalidSecretFormat
	}
	code.Secret = models.OTPSecret{Data: r.Secret, Format: models.SecretFormatBase32}

	alg := models.OTPAlgorithm(r.Algorithm)
	if _, err := hashFor(alg); err != nil {
		return models.OTPCode{}, models.DecodeErrorInvalidAlgorithm
	}
	code.Algorithm = alg

	if r.Digits < MinDigits || r.Digits > MaxDigits {
		return models.OTPCode{}, models.DecodeErrorInvalidDigits
	}

	return code, nil
}

// EncodeRecord is the inverse of DecodeRecord.
func EncodeRecord(code models.OTPCode) models.OTPRecord {
	r := models.OTPRecord{
		ID:          code.ID,
		Kind:        string(code.Kind),
		Issuer:      code.Issuer,
		AccountName: code.AccountName,
		Secret:      code.Secret.Data,
		Format:      string(code.Secret.Format),
		Algorithm:   string(code.Algorithm),
		Digits:      code.Digits,
		CreatedAt:   code.CreatedAt,
		UpdatedAt:   code.UpdatedAt,
	}

	switch code.Kind {
	case models.KindTOTP:
		period := code.Period
		r.Period = &period
	case models.KindHOTP:
		counter := code.Counter
		r.Counter = &counter
	}

	return r
}
