package codec

import "errors"

var (
	// ErrInvalidLength is returned when the unpadded input length is not one
	// of the lengths a Base32 encoder can produce, or when padding is malformed.
	ErrInvalidLength = errors.New("invalid base32 length")
	// ErrInvalidCharacter is returned when the input contains a symbol that is
	// not part of the alphabet.
	ErrInvalidCharacter = errors.New("invalid base32 character")
	// ErrNonCanonical is returned when the unused bits of the final symbol
	// are not zero, so a second spelling of the same bytes would be accepted.
	ErrNonCanonical = errors.New("non-canonical base32 encoding")
)
