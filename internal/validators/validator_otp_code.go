package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-otp-vault/internal/otp"
	"github.com/MKhiriev/go-otp-vault/models"
)

const (
	FieldID          = "id"
	FieldKind        = "kind"
	FieldAccountName = "account_name"
	FieldSecret      = "secret"
	FieldAlgorithm   = "algorithm"
	FieldDigits      = "digits"
	FieldPeriod      = "period"
	FieldCounter     = "counter"
	FieldTimestamps  = "timestamps"
)

var allowedAlgorithms = []models.OTPAlgorithm{
	models.AlgorithmSHA1,
	models.AlgorithmSHA256,
	models.AlgorithmSHA512,
}

type OTPCodeValidator struct {
}

func NewOTPCodeValidator() Validator {
	return &OTPCodeValidator{}
}

func (v *OTPCodeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OTPCode:
		return v.validateOTPCode(ctx, value, fields...)
	case *models.OTPCode:
		return v.validateOTPCode(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *OTPCodeValidator) validateOTPCode(_ context.Context, code models.OTPCode, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldKind, FieldAccountName, FieldSecret, FieldAlgorithm, FieldDigits, FieldPeriod, FieldCounter, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if code.ID == "" {
				return ErrInvalidID
			}
		case FieldKind:
			if code.Kind != models.KindTOTP && code.Kind != models.KindHOTP {
				return ErrInvalidKind
			}
		case FieldAccountName:
			if code.AccountName == "" {
				return ErrEmptyAccountName
			}
		case FieldSecret:
			if len(code.Secret.Data) == 0 {
				return ErrEmptySecret
			}
		case FieldAlgorithm:
			if !slices.Contains(allowedAlgorithms, code.Algorithm) {
				return ErrInvalidAlgorithm
			}
		case FieldDigits:
			if code.Digits < otp.MinDigits || code.Digits > otp.MaxDigits {
				return ErrInvalidDigits
			}
		case FieldPeriod:
			// hotp entries carry no period
			if (code.Kind == models.KindTOTP) != (code.Period > 0) || code.Period > otp.MaxCounter {
				return ErrInvalidPeriod
			}
		case FieldCounter:
			if code.Kind != models.KindHOTP && code.Counter != 0 {
				return ErrUnexpectedCounter
			}
			if code.Counter > otp.MaxCounter {
				return ErrCounterOutOfRange
			}
		case FieldTimestamps:
			if code.CreatedAt.IsZero() || code.UpdatedAt.Before(code.CreatedAt) {
				return ErrInvalidTimestamps
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
