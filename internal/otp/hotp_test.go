package otp

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-otp-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rfcSecret = []byte("12345678901234567890")

func TestHOTP_RFC4226Vectors(t *testing.T) {
	want := []uint64{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}

	g, err := NewHOTP(rfcSecret, models.AlgorithmSHA1, 6)
	require.NoError(t, err)

	for counter, code := range want {
		assert.Equal(t, code, g.Code(uint64(counter)), "counter %d", counter)
		assert.True(t, g.Verify(uint64(counter), code))
	}
}

func TestHOTP_VerifyRejectsWrongValues(t *testing.T) {
	g, err := NewHOTP(rfcSecret, models.AlgorithmSHA1, 6)
	require.NoError(t, err)

	assert.False(t, g.Verify(0, 287082))
	assert.False(t, g.Verify(0, 755225))
	assert.False(t, g.Verify(0, 1<<40+755224))
}

func TestHOTP_InvalidParameters(t *testing.T) {
	_, err := NewHOTP(nil, models.AlgorithmSHA1, 6)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewHOTP(rfcSecret, models.AlgorithmSHA1, 0)
	assert.ErrorIs(t, err, ErrInvalidDigits)

	_, err = NewHOTP(rfcSecret, models.AlgorithmSHA1, 11)
	assert.ErrorIs(t, err, ErrInvalidDigits)

	_, err = NewHOTP(rfcSecret, "MD5", 6)
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
}

func TestHOTP_SecretIsCopied(t *testing.T) {
	secret := []byte(string(rfcSecret))
	g, err := NewHOTP(secret, models.AlgorithmSHA1, 6)
	require.NoError(t, err)

	secret[0] = 'X'
	assert.Equal(t, uint64(755224), g.Code(0))
}

func TestRender(t *testing.T) {
	tests := []struct {
		code   uint64
		digits int
		want   string
	}{
		{42, 6, "000042"},
		{0, 6, "000000"},
		{755224, 6, "755224"},
		{94287082, 8, "94287082"},
		{7081804, 8, "07081804"},
		{5, 1, "5"},
	}

	for _, tt := range tests {
		got, err := Render(tt.code, tt.digits)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Len(t, got, tt.digits)
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(1234567, 6)
	assert.ErrorIs(t, err, ErrCodeTooLong)

	_, err = Render(1, 0)
	assert.ErrorIs(t, err, ErrInvalidDigits)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]models.OTPAlgorithm{
		"":       models.AlgorithmSHA1,
		"sha1":   models.AlgorithmSHA1,
		"SHA256": models.AlgorithmSHA256,
		"Sha512": models.AlgorithmSHA512,
	}
	for in, want := range tests {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("SHA3")
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
	assert.True(t, strings.Contains(err.Error(), "SHA3"))
}
