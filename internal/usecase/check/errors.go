package check

import "errors"

var (
	// ErrKeyNotFound signals a Contains call against an absent key.
	// Unlike Exists, Contains treats a missing key as a caller error,
	// not a negative result.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotScalar signals a Contains item that is not a scalar.
	ErrNotScalar = errors.New("item must be a scalar")
	// ErrInvalidExpectation signals an expectation whose shape cannot be
	// compared against the key's kind.
	ErrInvalidExpectation = errors.New("expectation does not fit the key's kind")
)
