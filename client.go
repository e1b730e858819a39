package keycheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/keycheck/internal/db"
	dbRedis "github.com/kailas-cloud/keycheck/internal/db/redis"
	"github.com/kailas-cloud/keycheck/internal/domain/value"
	checkuc "github.com/kailas-cloud/keycheck/internal/usecase/check"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the keycheck entry point: a comparison engine plus the
// convenience read/write helpers a test suite needs around it.
type Client struct {
	store   db.Store
	checker checkuc.Checker
}

// New creates a Client and connects to the store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("keycheck: database address required (use WithRedis or WithAddrs)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("keycheck: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("keycheck: database not ready: %w", err)
	}

	var checker checkuc.Checker = checkuc.New(store)
	if cfg.logger != nil {
		checker = checkuc.NewInstrumented(checker, cfg.logger)
	}

	return &Client{store: store, checker: checker}, nil
}

// Close shuts down the store connection.
func (c *Client) Close() {
	c.store.Close()
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Exists reports whether key is present and, when an expectation is
// supplied, whether the stored value matches it under the kind-specific
// rule. At most one expectation is allowed; nil checks existence only.
// A failed comparison is reported via Report.Passed, never as an error.
func (c *Client) Exists(ctx context.Context, key string, expected ...any) (Report, error) {
	rep, err := c.checker.Exists(ctx, key, expected...)
	return reportFromInternal(rep), err
}

// Contains reports whether key's stored value contains item: substring for
// strings, element for lists, member for sets and sorted sets, field name
// for hashes. The optional itemValue constrains the sorted-set score or the
// hash field value. An absent key is ErrKeyNotFound, not a negative result.
func (c *Client) Contains(ctx context.Context, key string, item any, itemValue ...any) (bool, error) {
	return c.checker.Contains(ctx, key, item, itemValue...)
}

// Set stores a scalar value, for seeding fixtures.
func (c *Client) Set(ctx context.Context, key, val string) error {
	return c.store.Set(ctx, key, val)
}

// Append appends to a scalar value, creating the key when absent.
func (c *Client) Append(ctx context.Context, key, val string) error {
	return c.store.Append(ctx, key, val)
}

// PushList appends elements to the tail of a list.
func (c *Client) PushList(ctx context.Context, key string, vals ...string) error {
	return c.store.ListPush(ctx, key, vals...)
}

// AddSet adds members to a set.
func (c *Client) AddSet(ctx context.Context, key string, members ...string) error {
	return c.store.SetAdd(ctx, key, members...)
}

// AddSorted adds scored members to a sorted set.
func (c *Client) AddSorted(ctx context.Context, key string, scores map[string]float64) error {
	members := make([]value.ScoredMember, 0, len(scores))
	for member, score := range scores {
		members = append(members, value.ScoredMember{Member: member, Score: score})
	}
	return c.store.SortedAdd(ctx, key, members...)
}

// SetHash sets hash fields.
func (c *Client) SetHash(ctx context.Context, key string, fields map[string]string) error {
	return c.store.HashSet(ctx, key, fields)
}

// Del deletes a key.
func (c *Client) Del(ctx context.Context, key string) error {
	return c.store.Del(ctx, key)
}

// Cleanup removes every key in the selected database. Call between suites.
func (c *Client) Cleanup(ctx context.Context) error {
	return c.store.FlushDB(ctx)
}
