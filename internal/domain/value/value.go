// Package value holds the expected-value model for keyspace checks:
// the kind classification reported by the store, the loosely-typed
// expectation variant supplied by callers, and the normalization and
// equality rules the comparison engine applies to them.
package value

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind classifies the stored shape of a key.
type Kind string

// Kinds reported by the store's TYPE command.
const (
	Absent    Kind = "absent"
	String    Kind = "string"
	List      Kind = "list"
	Set       Kind = "set"
	SortedSet Kind = "zset"
	Hash      Kind = "hash"
)

// ErrUnexpectedKind signals a TYPE reply outside the known set.
// This is a defect (protocol drift), not a failed check.
var ErrUnexpectedKind = errors.New("unexpected value kind")

// ErrUnsupported signals an expectation shape the engine cannot compare.
var ErrUnsupported = errors.New("unsupported expectation type")

// KindFromRedis maps a TYPE command reply to a Kind.
func KindFromRedis(t string) (Kind, error) {
	switch t {
	case "none":
		return Absent, nil
	case "string":
		return String, nil
	case "list":
		return List, nil
	case "set":
		return Set, nil
	case "zset":
		return SortedSet, nil
	case "hash":
		return Hash, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnexpectedKind, t)
}

// Value is the expectation variant: Scalar, Sequence or Mapping.
// The set is closed; nesting is one level deep (containers hold scalars only).
type Value interface {
	isValue()
}

type scalarKind uint8

const (
	scalarString scalarKind = iota
	scalarInt
	scalarFloat
	scalarBool
)

// Scalar is a single expected value: a string, a number or a boolean.
type Scalar struct {
	kind scalarKind
	s    string
	i    int64
	f    float64
	b    bool
}

func (Scalar) isValue() {}

// Str creates a string scalar.
func Str(s string) Scalar { return Scalar{kind: scalarString, s: s} }

// Int creates an integer scalar.
func Int(i int64) Scalar { return Scalar{kind: scalarInt, i: i} }

// Float creates a floating-point scalar.
func Float(f float64) Scalar { return Scalar{kind: scalarFloat, f: f} }

// Bool creates a boolean scalar. Normalization renders it as "1"/"0",
// matching how booleans end up in the store.
func Bool(b bool) Scalar { return Scalar{kind: scalarBool, b: b} }

// IsBool reports whether the scalar is a boolean literal.
func (s Scalar) IsBool() bool { return s.kind == scalarBool }

// String renders the scalar in its store wire form.
func (s Scalar) String() string {
	switch s.kind {
	case scalarInt:
		return strconv.FormatInt(s.i, 10)
	case scalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case scalarBool:
		if s.b {
			return "1"
		}
		return "0"
	}
	return s.s
}

// Float returns the scalar's numeric value. A string scalar qualifies when
// it parses as a float; booleans do not qualify.
func (s Scalar) Float() (float64, bool) {
	switch s.kind {
	case scalarInt:
		return float64(s.i), true
	case scalarFloat:
		return s.f, true
	case scalarString:
		f, err := strconv.ParseFloat(s.s, 64)
		return f, err == nil
	}
	return 0, false
}

// Sequence is an ordered expectation; order is significant for list checks.
type Sequence []Scalar

func (Sequence) isValue() {}

// Mapping is an associative expectation: hash fields or sorted-set scores.
type Mapping map[string]Scalar

func (Mapping) isValue() {}

// ScalarFrom converts a loosely-typed Go value into a Scalar.
func ScalarFrom(v any) (Scalar, error) {
	switch t := v.(type) {
	case Scalar:
		return t, nil
	case string:
		return Str(t), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(int64(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	}
	return Scalar{}, fmt.Errorf("%w: %T is not a scalar", ErrUnsupported, v)
}

// From converts a loosely-typed Go value into the expectation variant.
// Containers may hold scalars only; deeper nesting is rejected.
func From(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case []any:
		seq := make(Sequence, len(t))
		for i, el := range t {
			s, err := ScalarFrom(el)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq[i] = s
		}
		return seq, nil
	case []string:
		seq := make(Sequence, len(t))
		for i, el := range t {
			seq[i] = Str(el)
		}
		return seq, nil
	case map[string]any:
		m := make(Mapping, len(t))
		for k, el := range t {
			s, err := ScalarFrom(el)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			m[k] = s
		}
		return m, nil
	case map[string]string:
		m := make(Mapping, len(t))
		for k, el := range t {
			m[k] = Str(el)
		}
		return m, nil
	}
	return ScalarFrom(v)
}
