package conductor

import "errors"

var (
	// ErrInvalidInput covers non-positive current/length/voltage and
	// values outside the physical range (ambient, conductor count).
	ErrInvalidInput = errors.New("invalid input")

	// ErrSizeNotFound means an explicit size selector does not exist in
	// the chosen standard's catalog. Usually a caller bug (mixed
	// standard and size label).
	ErrSizeNotFound = errors.New("conductor size not found")
)
