package redis

import (
	"context"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/keycheck/internal/db"
	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// TypeOf reports the kind of a key via TYPE.
func (s *Store) TypeOf(ctx context.Context, key string) (value.Kind, error) {
	cmd := s.b().Type().Key(key).Build()
	reply, err := s.do(ctx, cmd).ToString()
	if err != nil {
		return "", &db.Error{Op: db.OpType, Err: err}
	}
	kind, err := value.KindFromRedis(reply)
	if err != nil {
		// Unknown kind is a protocol-level defect, not a transport failure;
		// propagate without the Op wrapper so errors.Is keeps working.
		return "", err
	}
	return kind, nil
}

// Get returns a scalar string value.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	cmd := s.b().Get().Key(key).Build()
	val, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", db.ErrKeyNotFound
		}
		return "", &db.Error{Op: db.OpGet, Err: err}
	}
	return val, nil
}

// ListRange returns list elements between start and stop, inclusive.
func (s *Store) ListRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	cmd := s.b().Lrange().Key(key).Start(start).Stop(stop).Build()
	vals, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return vals, nil
}

// SetMembers returns all members of a set.
func (s *Store) SetMembers(ctx context.Context, key string) ([]string, error) {
	cmd := s.b().Smembers().Key(key).Build()
	vals, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpSMembers, Err: err}
	}
	return vals, nil
}

// SortedRange returns (member, score) pairs between rank start and stop,
// inclusive, in ascending score order.
func (s *Store) SortedRange(ctx context.Context, key string, start, stop int64) ([]value.ScoredMember, error) {
	cmd := s.b().Zrange().Key(key).
		Min(strconv.FormatInt(start, 10)).
		Max(strconv.FormatInt(stop, 10)).
		Withscores().Build()
	scores, err := s.do(ctx, cmd).AsZScores()
	if err != nil {
		return nil, &db.Error{Op: db.OpZRange, Err: err}
	}
	out := make([]value.ScoredMember, len(scores))
	for i, z := range scores {
		out[i] = value.ScoredMember{Member: z.Member, Score: z.Score}
	}
	return out, nil
}

// HashGetAll returns all fields of a hash.
func (s *Store) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	cmd := s.b().Hgetall().Key(key).Build()
	m, err := s.do(ctx, cmd).AsStrMap()
	if err != nil {
		return nil, &db.Error{Op: db.OpHGetAll, Err: err}
	}
	return m, nil
}

// HashGet returns a single hash field; found is false when it is absent.
func (s *Store) HashGet(ctx context.Context, key, field string) (string, bool, error) {
	cmd := s.b().Hget().Key(key).Field(field).Build()
	val, err := s.do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", false, nil
		}
		return "", false, &db.Error{Op: db.OpHGet, Err: err}
	}
	return val, true, nil
}

// SetContains reports set membership via SISMEMBER.
func (s *Store) SetContains(ctx context.Context, key, member string) (bool, error) {
	cmd := s.b().Sismember().Key(key).Member(member).Build()
	ok, err := s.do(ctx, cmd).AsBool()
	if err != nil {
		return false, &db.Error{Op: db.OpSIsMember, Err: err}
	}
	return ok, nil
}

// Score returns a sorted-set member's score; found is false when it is absent.
func (s *Store) Score(ctx context.Context, key, member string) (float64, bool, error) {
	cmd := s.b().Zscore().Key(key).Member(member).Build()
	score, err := s.do(ctx, cmd).AsFloat64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, false, nil
		}
		return 0, false, &db.Error{Op: db.OpZScore, Err: err}
	}
	return score, true, nil
}
