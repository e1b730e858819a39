package redis

import (
	"context"

	"github.com/kailas-cloud/keycheck/internal/db"
	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// Set stores a scalar value at the given key.
func (s *Store) Set(ctx context.Context, key, val string) error {
	cmd := s.b().Set().Key(key).Value(val).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// Append appends to a scalar value, creating the key when absent.
func (s *Store) Append(ctx context.Context, key, val string) error {
	cmd := s.b().Append().Key(key).Value(val).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpAppend, Err: err}
	}
	return nil
}

// ListPush appends elements to the tail of a list.
func (s *Store) ListPush(ctx context.Context, key string, vals ...string) error {
	if len(vals) == 0 {
		return nil
	}
	cmd := s.b().Rpush().Key(key).Element(vals...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpRPush, Err: err}
	}
	return nil
}

// SetAdd adds members to a set.
func (s *Store) SetAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	cmd := s.b().Sadd().Key(key).Member(members...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSAdd, Err: err}
	}
	return nil
}

// SortedAdd adds scored members to a sorted set.
func (s *Store) SortedAdd(ctx context.Context, key string, members ...value.ScoredMember) error {
	if len(members) == 0 {
		return nil
	}
	cmd := s.b().Zadd().Key(key).ScoreMember()
	for _, m := range members {
		cmd = cmd.ScoreMember(m.Score, m.Member)
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpZAdd, Err: err}
	}
	return nil
}

// HashSet sets hash fields.
func (s *Store) HashSet(ctx context.Context, key string, fields map[string]string) error {
	cmd := s.b().Hset().Key(key).FieldValue()
	for k, v := range fields {
		cmd = cmd.FieldValue(k, v)
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return &db.Error{Op: db.OpHSet, Err: err}
	}
	return nil
}

// Del deletes a key.
func (s *Store) Del(ctx context.Context, key string) error {
	cmd := s.b().Del().Key(key).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// FlushDB removes every key in the selected database. Used between suites.
func (s *Store) FlushDB(ctx context.Context) error {
	cmd := s.b().Flushdb().Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpFlushDB, Err: err}
	}
	return nil
}
