// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kdf

import (
	"context"
	"fmt"
	"strings"
)

// Combination chains key derivers: the output of stage i becomes the
// password of stage i+1 and every stage receives the same salt.
type Combination struct {
	Derivers []KeyDeriver
}

// NewCombination returns a Combination running derivers in order.
func NewCombination(derivers ...KeyDeriver) Combination {
	return Combination{Derivers: derivers}
}

// Derive implements [KeyDeriver]. The context is checked before every stage;
// a stage itself is never interrupted. On cancellation the error matches both
// [ErrDerivationCancelled] and the context error, and no partial key is
// returned.
func (c Combination) Derive(ctx context.Context, password, salt []byte) ([]byte, error) {
	if len(c.Derivers) == 0 {
		return nil, ErrEmptyCombination
	}
	if err := c.checkLengths(); err != nil {
		return nil, err
	}

	current := password
	for i, stage := range c.Derivers {
		if err := ctx.Err(); err != nil {
			c.wipe(current, password)
			return nil, fmt.Errorf("%w before stage %d: %w", ErrDerivationCancelled, i, err)
		}

		next, err := stage.Derive(ctx, current, salt)
		if !sharesStart(current, next) {
			c.wipe(current, password)
		}
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.AlgorithmIdentifier(), err)
		}
		current = next
	}

	return current, nil
}

// wipe zeroes an intermediate key. The caller's password is left untouched.
func (c Combination) wipe(buf, password []byte) {
	if len(buf) == 0 || sharesStart(buf, password) {
		return
	}
	clear(buf)
}

func sharesStart(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func (c Combination) checkLengths() error {
	want := c.Derivers[0].OutputLength()
	for _, d := range c.Derivers[1:] {
		if d.OutputLength() != want {
			return fmt.Errorf("%w: %s produces %d bytes, expected %d",
				ErrKeyLengthMismatch, d.AlgorithmIdentifier(), d.OutputLength(), want)
		}
	}
	return nil
}

// AlgorithmIdentifier implements [KeyDeriver].
func (c Combination) AlgorithmIdentifier() string {
	ids := make([]string, 0, len(c.Derivers))
	for _, d := range c.Derivers {
		ids = append(ids, d.AlgorithmIdentifier())
	}
	return "COMBINATION<" + strings.Join(ids, "|") + ">"
}

// OutputLength implements [KeyDeriver]. It reports the length of the last
// stage, or zero for an empty chain.
func (c Combination) OutputLength() KeyLength {
	if len(c.Derivers) == 0 {
		return 0
	}
	return c.Derivers[len(c.Derivers)-1].OutputLength()
}
