package keycheck

import (
	checkuc "github.com/kailas-cloud/keycheck/internal/usecase/check"
)

// Kind classifies the stored shape of a key.
type Kind string

// Kinds a key can have.
const (
	KindAbsent    Kind = "absent"
	KindString    Kind = "string"
	KindList      Kind = "list"
	KindSet       Kind = "set"
	KindSortedSet Kind = "zset"
	KindHash      Kind = "hash"
)

// Report is the outcome of an Exists check. A failed comparison is not an
// error: Passed is false and Expected/Actual carry human-readable renderings
// for the failure message.
type Report struct {
	Key      string
	Kind     Kind
	Found    bool
	Passed   bool
	Expected string
	Actual   string
}

func reportFromInternal(rep checkuc.Report) Report {
	return Report{
		Key:      rep.Key,
		Kind:     Kind(rep.Kind),
		Found:    rep.Found,
		Passed:   rep.Passed,
		Expected: rep.Expected,
		Actual:   rep.Actual,
	}
}
