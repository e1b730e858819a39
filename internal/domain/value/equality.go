package value

import (
	"sort"
	"strconv"
)

// LooseEqual compares an expected scalar against a stored string with
// numeric awareness: when both sides parse as floats they are compared
// numerically ("2" equals 2), otherwise byte-wise. Booleans are expected
// to be normalized away before this is called.
func LooseEqual(expected Scalar, actual string) bool {
	if ef, ok := expected.Float(); ok {
		if af, err := strconv.ParseFloat(actual, 64); err == nil {
			return ef == af
		}
	}
	return expected.String() == actual
}

// EqualList compares an expected sequence against stored list elements:
// same length, same elements, same positions. No numeric coercion here;
// list checks are exact.
func EqualList(expected Sequence, actual []string) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i, s := range expected {
		if s.String() != actual[i] {
			return false
		}
	}
	return true
}

// EqualSet compares an expected sequence against stored set members,
// ignoring order. Both sides are sorted lexicographically and then compared
// exactly, which keeps membership and multiplicity strict.
func EqualSet(expected Sequence, actual []string) bool {
	if len(expected) != len(actual) {
		return false
	}
	es := make([]string, len(expected))
	for i, s := range expected {
		es[i] = s.String()
	}
	as := make([]string, len(actual))
	copy(as, actual)
	sort.Strings(es)
	sort.Strings(as)
	for i := range es {
		if es[i] != as[i] {
			return false
		}
	}
	return true
}

// EqualScored compares (member, score) pair sequences positionally.
// Both sides must already be in the store's native ascending order; scores
// compare as floats.
func EqualScored(expected, actual []ScoredMember) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i, p := range expected {
		if p.Member != actual[i].Member || p.Score != actual[i].Score {
			return false
		}
	}
	return true
}

// EqualHash compares an expected mapping against stored hash fields:
// same field set, loose per-field value equality, no order.
func EqualHash(expected Mapping, actual map[string]string) bool {
	if len(expected) != len(actual) {
		return false
	}
	for field, want := range expected {
		got, ok := actual[field]
		if !ok || !LooseEqual(want, got) {
			return false
		}
	}
	return true
}
