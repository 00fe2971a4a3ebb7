package race

import "errors"

var (
	// ErrNoOperations is returned when a race is started without operations.
	ErrNoOperations = errors.New("no operations to race")
	// ErrTimeout is returned by WithTimeout when the delay elapses first.
	ErrTimeout = errors.New("operation timed out")
)
