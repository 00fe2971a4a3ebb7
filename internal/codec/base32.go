// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base32"
	"fmt"
	"strings"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	hexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

	padChar = '='
)

// paddingByRemainder maps the unpadded length mod 8 to the number of '='
// characters that complete the final block. Remainders 1, 3 and 6 can never
// be produced by an encoder.
var paddingByRemainder = map[int]int{0: 0, 2: 6, 4: 4, 5: 3, 7: 1}

// Encoding is a Base32 alphabet together with the validation rules shared by
// both RFC 4648 variants.
type Encoding struct {
	alphabet string
	padded   *base32.Encoding
	unpadded *base32.Encoding
}

var (
	// Base32 is the standard RFC 4648 alphabet (A-Z, 2-7).
	Base32 = newEncoding(stdAlphabet)

	// Base32Hex is the RFC 4648 "extended hex" alphabet (0-9, A-V).
	Base32Hex = newEncoding(hexAlphabet)
)

func newEncoding(alphabet string) *Encoding {
	padded := base32.NewEncoding(alphabet)
	return &Encoding{
		alphabet: alphabet,
		padded:   padded,
		unpadded: padded.WithPadding(base32.NoPadding),
	}
}

// Encode returns the padded encoding of src. Empty input encodes to the
// empty string.
func (e *Encoding) Encode(src []byte) string {
	return e.padded.EncodeToString(src)
}

// EncodeUnpadded returns the encoding of src with trailing '=' removed, the
// form most authenticator apps put into otpauth URIs.
func (e *Encoding) EncodeUnpadded(src []byte) string {
	return e.unpadded.EncodeToString(src)
}

// Decode parses s in either padded or unpadded form, ignoring letter case.
func (e *Encoding) Decode(s string) ([]byte, error) {
	body := strings.TrimRight(s, string(padChar))
	padding := len(s) - len(body)

	want, ok := paddingByRemainder[len(body)%8]
	if !ok {
		return nil, fmt.Errorf("%w: %d symbols", ErrInvalidLength, len(body))
	}
	if padding > 0 && padding != want {
		return nil, fmt.Errorf("%w: expected %d padding characters, got %d", ErrInvalidLength, want, padding)
	}

	normalized := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if strings.IndexByte(e.alphabet, c) < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, body[i], i)
		}
		normalized[i] = c
	}

	out := make([]byte, e.unpadded.DecodedLen(len(normalized)))
	n, err := e.unpadded.Decode(out, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCharacter, err)
	}
	out = out[:n]

	if e.unpadded.EncodeToString(out) != string(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrNonCanonical, s)
	}

	return out, nil
}
