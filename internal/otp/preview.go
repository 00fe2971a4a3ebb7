package otp

import (
	"time"

	"github.com/MKhiriev/go-otp-vault/models"
)

// Preview renders the current code of an entry. TOTP entries use the step
// containing at; HOTP entries use the stored counter without advancing it.
func Preview(code models.OTPCode, at time.Time) (models.OTPPreview, error) {
	g, err := NewGenerator(code)
	if err != nil {
		return models.OTPPreview{}, err
	}

	preview := models.OTPPreview{EntryID: code.ID, Counter: code.Counter}
	factor := code.Counter
	if totp, ok := g.(*TOTP); ok {
		factor = epoch(at)
		preview.Counter = totp.Counter(factor)
		preview.ValidFor = time.Duration(totp.RemainingSeconds(factor)) * time.Second
	}

	preview.Code, err = Render(g.Code(factor), g.Digits())
	if err != nil {
		return models.OTPPreview{}, err
	}
	return preview, nil
}
