// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp generates and verifies HMAC-based (RFC 4226) and time-based
// (RFC 6238) one-time passwords, renders them for display and converts OTP
// entries to and from otpauth:// URIs.
//
// Generators are pure functions of counter or time. HOTP counter state lives
// in the stored entry and must be persisted by the caller after every
// rendered code.
package otp
