package keycheck

import (
	"github.com/kailas-cloud/keycheck/internal/domain/value"
	checkuc "github.com/kailas-cloud/keycheck/internal/usecase/check"
)

// Sentinel errors re-exported from the engine.
// Use errors.Is() to check.
var (
	// ErrKeyNotFound is returned by Contains when the key is absent.
	ErrKeyNotFound = checkuc.ErrKeyNotFound
	// ErrNotScalar is returned by Contains for a non-scalar item.
	ErrNotScalar = checkuc.ErrNotScalar
	// ErrInvalidExpectation is returned when an expectation's shape does not
	// fit the key's kind.
	ErrInvalidExpectation = checkuc.ErrInvalidExpectation
	// ErrUnexpectedKind is returned when the store reports a kind this
	// library does not know.
	ErrUnexpectedKind = value.ErrUnexpectedKind
)
