package check

import (
	"context"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// Store is the read-only query surface the engine needs. Satisfied by
// db.Reader; redeclared here so the engine depends only on what it uses.
type Store interface {
	TypeOf(ctx context.Context, key string) (value.Kind, error)
	Get(ctx context.Context, key string) (string, error)
	ListRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	SetMembers(ctx context.Context, key string) ([]string, error)
	SortedRange(ctx context.Context, key string, start, stop int64) ([]value.ScoredMember, error)
	HashGetAll(ctx context.Context, key string) (map[string]string, error)
	HashGet(ctx context.Context, key, field string) (val string, found bool, err error)
	SetContains(ctx context.Context, key, member string) (bool, error)
	Score(ctx context.Context, key, member string) (score float64, found bool, err error)
}
