package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOTPCodeNotFound is returned when a query or update targets an entry
	// that does not exist.
	ErrOTPCodeNotFound = errors.New("otp code was not found")

	// ErrOTPCodeNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrOTPCodeNotSaved = errors.New("otp code was not saved")

	// ErrCounterConflict is returned when an HOTP counter changed between
	// reading it and storing its successor.
	ErrCounterConflict = errors.New("hotp counter was changed concurrently")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan otp code row")
)
