package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc", info.String())
}

func TestOTPDecodeError_Error(t *testing.T) {
	assert.Equal(t, "missing period for totp code", DecodeErrorMissingPeriod.Error())
	assert.Equal(t, "otp decode error 99", OTPDecodeError(99).Error())
}
