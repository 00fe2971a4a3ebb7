package kdf

import "errors"

var (
	// ErrEmptySalt is returned by derivers that refuse to run without a salt.
	ErrEmptySalt = errors.New("salt must not be empty")
	// ErrInvalidParameters is returned when a deriver is configured with
	// parameters the underlying primitive cannot run with.
	ErrInvalidParameters = errors.New("invalid key derivation parameters")
	// ErrEmptyCombination is returned when a Combination has no stages.
	ErrEmptyCombination = errors.New("combination requires at least one key deriver")
	// ErrKeyLengthMismatch is returned when the stages of a Combination do not
	// agree on the output key length.
	ErrKeyLengthMismatch = errors.New("key derivers in combination disagree on key length")
	// ErrDerivationCancelled is returned when a derivation is aborted through
	// its context. It is a user abort, not a derivation failure.
	ErrDerivationCancelled = errors.New("key derivation cancelled")
	// ErrDerivationFailed is returned when the underlying primitive fails.
	ErrDerivationFailed = errors.New("key derivation failed")
)
