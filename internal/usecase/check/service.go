// Package check implements the keyspace comparison engine: per-kind equality
// for Exists and per-kind membership for Contains, over a read-only store.
package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// Service verifies stored values against caller expectations. Stateless:
// every call queries the store fresh and nothing is cached between calls,
// so a Service is safe for concurrent use whenever its Store is.
type Service struct {
	store Store
}

// New creates a comparison engine over the given store.
func New(store Store) *Service {
	return &Service{store: store}
}

// Exists reports whether key is present and, when an expectation is supplied,
// whether the stored value matches it under the kind-specific rule:
// loose scalar equality for strings and hash fields, strict ordered equality
// for lists, order-insensitive exact equality for sets, and float-compared
// (member, score) pairs for sorted sets.
//
// At most one expectation may be supplied; a nil expectation checks
// existence only. A failed comparison is reported via Report.Passed, never
// as an error.
func (s *Service) Exists(ctx context.Context, key string, expected ...any) (Report, error) {
	rep := Report{Key: key}

	if len(expected) > 1 {
		return rep, fmt.Errorf("%w: at most one expectation", ErrInvalidExpectation)
	}

	kind, err := s.store.TypeOf(ctx, key)
	if err != nil {
		return rep, err
	}
	rep.Kind = kind

	if kind == value.Absent {
		return rep, nil
	}
	rep.Found = true
	rep.Passed = true

	if len(expected) == 0 || expected[0] == nil {
		return rep, nil
	}

	want, err := value.From(expected[0])
	if err != nil {
		return rep, fmt.Errorf("%w: %v", ErrInvalidExpectation, err)
	}
	want = value.Normalize(want)

	switch kind {
	case value.String:
		err = s.existsString(ctx, &rep, want)
	case value.List:
		err = s.existsList(ctx, &rep, want)
	case value.Set:
		err = s.existsSet(ctx, &rep, want)
	case value.SortedSet:
		err = s.existsSorted(ctx, &rep, want)
	case value.Hash:
		err = s.existsHash(ctx, &rep, want)
	default:
		err = fmt.Errorf("%w: %q", value.ErrUnexpectedKind, kind)
	}
	return rep, err
}

func (s *Service) existsString(ctx context.Context, rep *Report, want value.Value) error {
	sc, ok := want.(value.Scalar)
	if !ok {
		return fmt.Errorf("%w: string key %q needs a scalar expectation", ErrInvalidExpectation, rep.Key)
	}
	actual, err := s.store.Get(ctx, rep.Key)
	if err != nil {
		return err
	}
	if !value.LooseEqual(sc, actual) {
		rep.fail(sc.String(), actual)
	}
	return nil
}

func (s *Service) existsList(ctx context.Context, rep *Report, want value.Value) error {
	seq, ok := want.(value.Sequence)
	if !ok {
		return fmt.Errorf("%w: list key %q needs a sequence expectation", ErrInvalidExpectation, rep.Key)
	}
	actual, err := s.store.ListRange(ctx, rep.Key, 0, -1)
	if err != nil {
		return err
	}
	if !value.EqualList(seq, actual) {
		rep.fail(renderValue(seq), renderStrings(actual))
	}
	return nil
}

func (s *Service) existsSet(ctx context.Context, rep *Report, want value.Value) error {
	seq, ok := want.(value.Sequence)
	if !ok {
		return fmt.Errorf("%w: set key %q needs a sequence expectation", ErrInvalidExpectation, rep.Key)
	}
	actual, err := s.store.SetMembers(ctx, rep.Key)
	if err != nil {
		return err
	}
	if !value.EqualSet(seq, actual) {
		rep.fail(renderValue(seq), renderStrings(actual))
	}
	return nil
}

func (s *Service) existsSorted(ctx context.Context, rep *Report, want value.Value) error {
	m, ok := want.(value.Mapping)
	if !ok {
		// Scores are mandatory for sorted sets; a bare sequence cannot
		// carry them.
		return fmt.Errorf("%w: sorted set key %q needs a member-to-score mapping", ErrInvalidExpectation, rep.Key)
	}
	wantPairs, err := value.Scores(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExpectation, err)
	}
	actual, err := s.store.SortedRange(ctx, rep.Key, 0, -1)
	if err != nil {
		return err
	}
	if !value.EqualScored(wantPairs, actual) {
		rep.fail(renderScored(wantPairs), renderScored(actual))
	}
	return nil
}

func (s *Service) existsHash(ctx context.Context, rep *Report, want value.Value) error {
	m, ok := want.(value.Mapping)
	if !ok {
		return fmt.Errorf("%w: hash key %q needs a mapping expectation", ErrInvalidExpectation, rep.Key)
	}
	actual, err := s.store.HashGetAll(ctx, rep.Key)
	if err != nil {
		return err
	}
	if !value.EqualHash(m, actual) {
		rep.fail(renderValue(m), renderHash(actual))
	}
	return nil
}

// Contains reports whether key's stored value contains item: substring for
// strings, element for lists, member for sets and sorted sets, field name
// for hashes. The optional itemValue constrains the sorted-set score
// (float equality) or the hash field value (exact string equality).
//
// item and itemValue must be scalars, checked before any store query.
// An absent key is an error (ErrKeyNotFound), not a negative result.
func (s *Service) Contains(ctx context.Context, key string, item any, itemValue ...any) (bool, error) {
	sc, err := value.ScalarFrom(item)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNotScalar, err)
	}

	if len(itemValue) > 1 {
		return false, fmt.Errorf("%w: at most one item value", ErrInvalidExpectation)
	}
	var itemVal value.Scalar
	hasVal := len(itemValue) == 1 && itemValue[0] != nil
	if hasVal {
		itemVal, err = value.ScalarFrom(itemValue[0])
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNotScalar, err)
		}
	}

	kind, err := s.store.TypeOf(ctx, key)
	if err != nil {
		return false, err
	}
	if kind == value.Absent {
		return false, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	member := sc.String()

	switch kind {
	case value.String:
		actual, err := s.store.Get(ctx, key)
		if err != nil {
			return false, err
		}
		return strings.Contains(actual, member), nil

	case value.List:
		vals, err := s.store.ListRange(ctx, key, 0, -1)
		if err != nil {
			return false, err
		}
		for _, v := range vals {
			if v == member {
				return true, nil
			}
		}
		return false, nil

	case value.Set:
		return s.store.SetContains(ctx, key, member)

	case value.SortedSet:
		score, found, err := s.store.Score(ctx, key, member)
		if err != nil || !found {
			return false, err
		}
		if !hasVal {
			return true, nil
		}
		want, ok := itemVal.Float()
		if !ok {
			return false, fmt.Errorf("%w: sorted set score must be numeric, got %q", ErrInvalidExpectation, itemVal.String())
		}
		return want == score, nil

	case value.Hash:
		val, found, err := s.store.HashGet(ctx, key, member)
		if err != nil || !found {
			return false, err
		}
		if !hasVal {
			return true, nil
		}
		return val == itemVal.String(), nil
	}
	return false, fmt.Errorf("%w: %q", value.ErrUnexpectedKind, kind)
}
