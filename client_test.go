package keycheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
	checkuc "github.com/kailas-cloud/keycheck/internal/usecase/check"
)

// fakeStore implements db.Store in memory for facade tests.
type fakeStore struct {
	kinds   map[string]value.Kind
	scalars map[string]string
	lists   map[string][]string
	sets    map[string][]string
	sorted  map[string][]value.ScoredMember
	hashes  map[string]map[string]string
	flushed bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		kinds:   map[string]value.Kind{},
		scalars: map[string]string{},
		lists:   map[string][]string{},
		sets:    map[string][]string{},
		sorted:  map[string][]value.ScoredMember{},
		hashes:  map[string]map[string]string{},
	}
}

func (f *fakeStore) Ping(context.Context) error { return nil }
func (f *fakeStore) Close()                     {}
func (f *fakeStore) WaitForReady(context.Context, time.Duration) error {
	return nil
}

func (f *fakeStore) TypeOf(_ context.Context, key string) (value.Kind, error) {
	if k, ok := f.kinds[key]; ok {
		return k, nil
	}
	return value.Absent, nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	return f.scalars[key], nil
}

func (f *fakeStore) ListRange(_ context.Context, key string, _, _ int64) ([]string, error) {
	return f.lists[key], nil
}

func (f *fakeStore) SetMembers(_ context.Context, key string) ([]string, error) {
	return f.sets[key], nil
}

func (f *fakeStore) SortedRange(_ context.Context, key string, _, _ int64) ([]value.ScoredMember, error) {
	return f.sorted[key], nil
}

func (f *fakeStore) HashGetAll(_ context.Context, key string) (map[string]string, error) {
	return f.hashes[key], nil
}

func (f *fakeStore) HashGet(_ context.Context, key, field string) (string, bool, error) {
	v, ok := f.hashes[key][field]
	return v, ok, nil
}

func (f *fakeStore) SetContains(_ context.Context, key, member string) (bool, error) {
	for _, m := range f.sets[key] {
		if m == member {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Score(_ context.Context, key, member string) (float64, bool, error) {
	for _, m := range f.sorted[key] {
		if m.Member == member {
			return m.Score, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeStore) Set(_ context.Context, key, val string) error {
	f.kinds[key] = value.String
	f.scalars[key] = val
	return nil
}

func (f *fakeStore) Append(_ context.Context, key, val string) error {
	f.kinds[key] = value.String
	f.scalars[key] += val
	return nil
}

func (f *fakeStore) ListPush(_ context.Context, key string, vals ...string) error {
	f.kinds[key] = value.List
	f.lists[key] = append(f.lists[key], vals...)
	return nil
}

func (f *fakeStore) SetAdd(_ context.Context, key string, members ...string) error {
	f.kinds[key] = value.Set
	f.sets[key] = append(f.sets[key], members...)
	return nil
}

func (f *fakeStore) SortedAdd(_ context.Context, key string, members ...value.ScoredMember) error {
	f.kinds[key] = value.SortedSet
	f.sorted[key] = append(f.sorted[key], members...)
	return nil
}

func (f *fakeStore) HashSet(_ context.Context, key string, fields map[string]string) error {
	f.kinds[key] = value.Hash
	if f.hashes[key] == nil {
		f.hashes[key] = map[string]string{}
	}
	for k, v := range fields {
		f.hashes[key][k] = v
	}
	return nil
}

func (f *fakeStore) Del(_ context.Context, key string) error {
	delete(f.kinds, key)
	return nil
}

func (f *fakeStore) FlushDB(context.Context) error {
	f.flushed = true
	return nil
}

func newTestClient(fs *fakeStore) *Client {
	return &Client{store: fs, checker: checkuc.New(fs)}
}

func TestNew_NoAddrs(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without addresses")
	}
}

func TestClient_Exists_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	c := newTestClient(fs)

	if err := c.Set(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rep, err := c.Exists(ctx, "greeting", "hello")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !rep.Passed || rep.Kind != KindString {
		t.Errorf("unexpected report: %+v", rep)
	}

	rep, err = c.Exists(ctx, "greeting", "goodbye")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if rep.Passed {
		t.Error("expected mismatch")
	}
	if rep.Expected != "goodbye" || rep.Actual != "hello" {
		t.Errorf("diagnostic = %q / %q", rep.Expected, rep.Actual)
	}
}

func TestClient_Exists_Absent(t *testing.T) {
	c := newTestClient(newFakeStore())

	rep, err := c.Exists(context.Background(), "ghost", "anything")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if rep.Found || rep.Passed {
		t.Errorf("unexpected report: %+v", rep)
	}
	if rep.Kind != KindAbsent {
		t.Errorf("kind = %q", rep.Kind)
	}
}

func TestClient_Contains_SortedSet(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()
	c := newTestClient(fs)

	if err := c.AddSorted(ctx, "board", map[string]float64{"alice": 1500}); err != nil {
		t.Fatalf("AddSorted: %v", err)
	}

	ok, err := c.Contains(ctx, "board", "alice", 1500)
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Error("expected member at score 1500")
	}

	ok, err = c.Contains(ctx, "board", "alice", 9000)
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if ok {
		t.Error("expected score mismatch")
	}
}

func TestClient_Contains_MissingKey(t *testing.T) {
	c := newTestClient(newFakeStore())

	_, err := c.Contains(context.Background(), "ghost", "x")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestClient_Cleanup(t *testing.T) {
	fs := newFakeStore()
	c := newTestClient(fs)

	if err := c.Cleanup(context.Background()); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if !fs.flushed {
		t.Error("expected FLUSHDB")
	}
}
