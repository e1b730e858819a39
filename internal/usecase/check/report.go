package check

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// Report is the outcome of an Exists check. A failed comparison is not an
// error: Passed is false and Expected/Actual carry renderings for the
// caller's failure message.
type Report struct {
	Key   string
	Kind  value.Kind
	Found bool
	// Passed is true when the key exists and the expectation (if any) matched.
	Passed bool
	// Expected and Actual are human-readable renderings, set on mismatch only.
	Expected string
	Actual   string
}

func (r *Report) fail(expected, actual string) {
	r.Passed = false
	r.Expected = expected
	r.Actual = actual
}

func renderValue(v value.Value) string {
	switch t := v.(type) {
	case value.Scalar:
		return t.String()
	case value.Sequence:
		parts := make([]string, len(t))
		for i, s := range t {
			parts[i] = s.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.Mapping:
		parts := make([]string, 0, len(t))
		for k, s := range t {
			parts = append(parts, k+": "+s.String())
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return ""
}

func renderStrings(vals []string) string {
	return "[" + strings.Join(vals, ", ") + "]"
}

func renderScored(pairs []value.ScoredMember) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Member + ": " + strconv.FormatFloat(p.Score, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderHash(m map[string]string) string {
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, k+": "+v)
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
