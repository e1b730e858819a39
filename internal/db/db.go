// Package db defines the store contract keycheck verifies against.
// Implementations live in subpackages (redis via rueidis).
package db

import (
	"context"
	"time"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// Store is the full database facade. Consumers should depend on the narrow
// sub-interfaces instead.
type Store interface {
	Pinger
	Reader
	Writer
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Reader provides the read-only queries the comparison engine issues.
// All reads assume the key's kind was just confirmed via TypeOf; the kind
// can still change between the two calls under concurrent mutation, which
// is an accepted race (single-snapshot consistency is not provided).
type Reader interface {
	// TypeOf reports the kind of a key; value.Absent when it does not exist.
	TypeOf(ctx context.Context, key string) (value.Kind, error)
	// Get returns a scalar string value.
	Get(ctx context.Context, key string) (string, error)
	// ListRange returns list elements between start and stop, inclusive,
	// in list order. Use 0, -1 for the full list.
	ListRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	// SetMembers returns all members of a set, order unspecified.
	SetMembers(ctx context.Context, key string) ([]string, error)
	// SortedRange returns (member, score) pairs between rank start and stop,
	// inclusive, in ascending score order. Use 0, -1 for the full set.
	SortedRange(ctx context.Context, key string, start, stop int64) ([]value.ScoredMember, error)
	// HashGetAll returns all fields of a hash.
	HashGetAll(ctx context.Context, key string) (map[string]string, error)
	// HashGet returns a single hash field; found is false when the field
	// (or the key) is absent.
	HashGet(ctx context.Context, key, field string) (val string, found bool, err error)
	// SetContains reports set membership.
	SetContains(ctx context.Context, key, member string) (bool, error)
	// Score returns a sorted-set member's score; found is false when the
	// member (or the key) is absent.
	Score(ctx context.Context, key, member string) (score float64, found bool, err error)
}

// Writer provides the convenience write and cleanup operations used to
// seed fixtures and reset state between suites.
type Writer interface {
	Set(ctx context.Context, key, val string) error
	Append(ctx context.Context, key, val string) error
	ListPush(ctx context.Context, key string, vals ...string) error
	SetAdd(ctx context.Context, key string, members ...string) error
	SortedAdd(ctx context.Context, key string, members ...value.ScoredMember) error
	HashSet(ctx context.Context, key string, fields map[string]string) error
	Del(ctx context.Context, key string) error
	FlushDB(ctx context.Context) error
}
