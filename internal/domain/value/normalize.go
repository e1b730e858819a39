package value

import (
	"fmt"
	"sort"
)

// Normalize returns v with every boolean literal replaced by its store wire
// form ("1" for true, "0" for false). The store holds strings only, so a
// boolean written through any client arrives back as one of these.
// Total over the variant; containers are copied, never mutated in place.
func Normalize(v Value) Value {
	switch t := v.(type) {
	case Scalar:
		return t.normalize()
	case Sequence:
		out := make(Sequence, len(t))
		for i, s := range t {
			out[i] = s.normalize()
		}
		return out
	case Mapping:
		out := make(Mapping, len(t))
		for k, s := range t {
			out[k] = s.normalize()
		}
		return out
	}
	return v
}

func (s Scalar) normalize() Scalar {
	if s.kind != scalarBool {
		return s
	}
	if s.b {
		return Str("1")
	}
	return Str("0")
}

// ScoredMember is one (member, score) pair of a sorted set.
type ScoredMember struct {
	Member string
	Score  float64
}

// Scores converts a member→score mapping into (member, float64) pairs in the
// store's native order: ascending score, ties broken by member. Scores are
// always compared as floats so "1" and "1.0" agree.
func Scores(m Mapping) ([]ScoredMember, error) {
	out := make([]ScoredMember, 0, len(m))
	for member, s := range m {
		f, ok := s.Float()
		if !ok {
			return nil, fmt.Errorf("score for member %q is not numeric: %q", member, s.String())
		}
		out = append(out, ScoredMember{Member: member, Score: f})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Member < out[j].Member
	})
	return out, nil
}
