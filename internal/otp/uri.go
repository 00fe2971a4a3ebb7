package otp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-otp-vault/internal/codec"
	"github.com/MKhiriev/go-otp-vault/models"
)

const uriScheme = "otpauth"

// ParseURI reads an otpauth:// key URI into an entry. ID and timestamps are
// left for the caller to fill in. Missing parameters take the defaults
// SHA1, 6 digits, period 30 and counter 0.
func ParseURI(raw string) (models.OTPCode, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if !strings.EqualFold(u.Scheme, uriScheme) {
		return models.OTPCode{}, fmt.Errorf("%w: scheme %q", ErrInvalidURI, u.Scheme)
	}

	var code models.OTPCode
	switch kind := models.OTPKind(strings.ToLower(u.Host)); kind {
	case models.KindTOTP, models.KindHOTP:
		code.Kind = kind
	default:
		return models.OTPCode{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, u.Host)
	}

	label := strings.TrimPrefix(u.Path, "/")
	if issuer, account, found := strings.Cut(label, ":"); found {
		code.Issuer = strings.TrimSpace(issuer)
		code.AccountName = strings.TrimSpace(account)
	} else {
		code.AccountName = strings.TrimSpace(label)
	}

	q := u.Query()
	if issuer := q.Get("issuer"); issuer != "" {
		code.Issuer = issuer
	}

	secret := strings.ReplaceAll(q.Get("secret"), " ", "")
	if secret == "" {
		return models.OTPCode{}, fmt.Errorf("%w: missing secret", ErrInvalidURI)
	}
	data, err := codec.Base32.Decode(secret)
	if err != nil {
		return models.OTPCode{}, fmt.Errorf("%w: secret: %w", ErrInvalidURI, err)
	}
	code.Secret = models.OTPSecret{Data: data, Format: models.SecretFormatBase32}

	if code.Algorithm, err = ParseAlgorithm(q.Get("algorithm")); err != nil {
		return models.OTPCode{}, err
	}

	code.Digits = models.DefaultOTPDigits
	if v := q.Get("digits"); v != "" {
		if code.Digits, err = strconv.Atoi(v); err != nil {
			return models.OTPCode{}, fmt.Errorf("%w: digits %q", ErrInvalidDigits, v)
		}
	}
	if code.Digits < MinDigits || code.Digits > MaxDigits {
		return models.OTPCode{}, fmt.Errorf("%w: %d", ErrInvalidDigits, code.Digits)
	}

	switch code.Kind {
	case models.KindTOTP:
		code.Period = models.DefaultOTPPeriod
		if v := q.Get("period"); v != "" {
			if code.Period, err = strconv.ParseUint(v, 10, 63); err != nil || code.Period == 0 {
				return models.OTPCode{}, fmt.Errorf("%w: period %q", ErrInvalidPeriod, v)
			}
		}
	case models.KindHOTP:
		if v := q.Get("counter"); v != "" {
			if code.Counter, err = strconv.ParseUint(v, 10, 63); err != nil {
				return models.OTPCode{}, fmt.Errorf("%w: counter %q", ErrInvalidURI, v)
			}
		}
	}

	return code, nil
}

// FormatURI renders an entry as an otpauth:// key URI with every parameter
// spelled out.
func FormatURI(code models.OTPCode) string {
	label := code.AccountName
	if code.Issuer != "" {
		label = code.Issuer + ":" + code.AccountName
	}

	q := url.Values{}
	q.Set("secret", codec.Base32.EncodeUnpadded(code.Secret.Data))
	if code.Issuer != "" {
		q.Set("issuer", code.Issuer)
	}
	q.Set("algorithm", string(code.Algorithm))
	q.Set("digits", strconv.Itoa(code.Digits))
	if code.Kind == models.KindHOTP {
		q.Set("counter", strconv.FormatUint(code.Counter, 10))
	} else {
		q.Set("period", strconv.FormatUint(code.Period, 10))
	}

	u := url.URL{
		Scheme:   uriScheme,
		Host:     string(code.Kind),
		Path:     "/" + label,
		RawQuery: q.Encode(),
	}
	return u.String()
}
