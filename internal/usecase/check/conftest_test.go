package check

import (
	"context"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	typeOfFn      func(ctx context.Context, key string) (value.Kind, error)
	getFn         func(ctx context.Context, key string) (string, error)
	listRangeFn   func(ctx context.Context, key string, start, stop int64) ([]string, error)
	setMembersFn  func(ctx context.Context, key string) ([]string, error)
	sortedRangeFn func(ctx context.Context, key string, start, stop int64) ([]value.ScoredMember, error)
	hashGetAllFn  func(ctx context.Context, key string) (map[string]string, error)
	hashGetFn     func(ctx context.Context, key, field string) (string, bool, error)
	setContainsFn func(ctx context.Context, key, member string) (bool, error)
	scoreFn       func(ctx context.Context, key, member string) (float64, bool, error)

	queried bool // set on any call so tests can assert fail-fast paths
}

func (m *mockStore) TypeOf(ctx context.Context, key string) (value.Kind, error) {
	m.queried = true
	if m.typeOfFn != nil {
		return m.typeOfFn(ctx, key)
	}
	return value.Absent, nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.queried = true
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return "", nil
}

func (m *mockStore) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	m.queried = true
	if m.listRangeFn != nil {
		return m.listRangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	m.queried = true
	if m.setMembersFn != nil {
		return m.setMembersFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) SortedRange(ctx context.Context, key string, start, stop int64) ([]value.ScoredMember, error) {
	m.queried = true
	if m.sortedRangeFn != nil {
		return m.sortedRangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	m.queried = true
	if m.hashGetAllFn != nil {
		return m.hashGetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HashGet(ctx context.Context, key, field string) (string, bool, error) {
	m.queried = true
	if m.hashGetFn != nil {
		return m.hashGetFn(ctx, key, field)
	}
	return "", false, nil
}

func (m *mockStore) SetContains(ctx context.Context, key, member string) (bool, error) {
	m.queried = true
	if m.setContainsFn != nil {
		return m.setContainsFn(ctx, key, member)
	}
	return false, nil
}

func (m *mockStore) Score(ctx context.Context, key, member string) (float64, bool, error) {
	m.queried = true
	if m.scoreFn != nil {
		return m.scoreFn(ctx, key, member)
	}
	return 0, false, nil
}

// fixedKind returns a mockStore whose TypeOf always reports kind.
func fixedKind(kind value.Kind) *mockStore {
	return &mockStore{
		typeOfFn: func(context.Context, string) (value.Kind, error) {
			return kind, nil
		},
	}
}
