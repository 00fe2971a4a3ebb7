// Package codec implements the RFC 4648 Base32 and Base32-Hex encodings used
// to move OTP secrets in and out of otpauth URIs.
//
// Encoding always emits '=' padding. Decoding is case-insensitive, accepts
// both padded and unpadded input and reports malformed input with
// [ErrInvalidLength] or [ErrInvalidCharacter].
package codec
