package otp

import (
	"fmt"
	"strconv"
	"strings"
)

// Render formats code as a decimal string left-padded with zeros to exactly
// digits characters.
func Render(code uint64, digits int) (string, error) {
	if digits < MinDigits {
		return "", fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}

	s := strconv.FormatUint(code, 10)
	if len(s) > digits {
		return "", fmt.Errorf("%w: %s does not fit %d digits", ErrCodeTooLong, s, digits)
	}

	return strings.Repeat("0", digits-len(s)) + s, nil
}
