// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OTPKind defines how a one-time password is advanced between codes.
type OTPKind string

const (
	// KindTOTP is a time-based code (RFC 6238). The counter is derived from
	// the current time and the entry's period.
	KindTOTP OTPKind = "totp"

	// KindHOTP is a counter-based code (RFC 4226). The counter is stored with
	// the entry and consumed on every rendered code.
	KindHOTP OTPKind = "hotp"
)

// OTPAlgorithm selects the HMAC hash function used to compute a code.
type OTPAlgorithm string

const (
	AlgorithmSHA1   OTPAlgorithm = "SHA1"
	AlgorithmSHA256 OTPAlgorithm = "SHA256"
	AlgorithmSHA512 OTPAlgorithm = "SHA512"
)

// SecretFormat describes how OTPSecret.Data is serialized outside the vault.
type SecretFormat string

const (
	// SecretFormatBase32 is the RFC 4648 Base32 form used in otpauth URIs.
	SecretFormatBase32 SecretFormat = "BASE_32"
)

// Default values applied to otpauth URIs that omit the matching parameter.
const (
	DefaultOTPDigits = 6
	DefaultOTPPeriod = 30
)

// OTPSecret is the shared HMAC key of an OTP entry.
// It is immutable once the entry is created; changing the secret means
// creating a new entry.
type OTPSecret struct {
	// Data is the raw secret key material.
	Data []byte `json:"data"`

	// Format is the text encoding the secret was imported from.
	Format SecretFormat `json:"format"`
}

// OTPCode is a single OTP entry stored in the vault.
type OTPCode struct {
	// ID is the client-generated unique identifier of the entry.
	ID string `json:"id"`

	// Kind is either KindTOTP or KindHOTP.
	Kind OTPKind `json:"kind"`

	// Issuer is the service the code belongs to (e.g. "GitHub").
	Issuer string `json:"issuer,omitempty"`

	// AccountName identifies the account at the issuer.
	AccountName string `json:"accountName"`

	// Secret is the shared key used to compute codes.
	Secret OTPSecret `json:"secret"`

	// Algorithm is the HMAC hash function.
	Algorithm OTPAlgorithm `json:"algorithm"`

	// Digits is the number of decimal digits in a rendered code.
	Digits int `json:"digits"`

	// Period is the TOTP time step in seconds. Zero for HOTP entries.
	Period uint64 `json:"period,omitempty"`

	// Counter is the next HOTP counter value. Zero for TOTP entries.
	Counter uint64 `json:"counter,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OTPPreview is a rendered code ready for display.
type OTPPreview struct {
	// EntryID is the ID of the OTPCode the preview was rendered from.
	EntryID string

	// Code is the zero-padded code string.
	Code string

	// Counter is the HOTP counter or TOTP time step the code was computed for.
	Counter uint64

	// ValidFor is how long a TOTP code stays valid. Zero for HOTP.
	ValidFor time.Duration
}
