package chi

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kailas-cloud/keycheck/internal/domain/value"
)

// scalarFromJSON converts a JSON leaf into a Scalar.
func scalarFromJSON(res gjson.Result) (value.Scalar, error) {
	switch res.Type {
	case gjson.String:
		return value.Str(res.Str), nil
	case gjson.Number:
		// Integral literals stay int64 so keys holding integers beyond
		// 2^53 still compare exactly.
		if !strings.ContainsAny(res.Raw, ".eE") {
			return value.Int(res.Int()), nil
		}
		return value.Float(res.Num), nil
	case gjson.True:
		return value.Bool(true), nil
	case gjson.False:
		return value.Bool(false), nil
	default:
		return value.Scalar{}, fmt.Errorf("%w: %s", value.ErrUnsupported, res.Type)
	}
}

// valueFromJSON converts an expectation document into the value variant.
// Containers may hold scalars only, mirroring the engine's nesting rule.
func valueFromJSON(res gjson.Result) (value.Value, error) {
	switch {
	case res.IsArray():
		var (
			seq value.Sequence
			err error
		)
		res.ForEach(func(_, el gjson.Result) bool {
			var s value.Scalar
			s, err = scalarFromJSON(el)
			if err != nil {
				return false
			}
			seq = append(seq, s)
			return true
		})
		if err != nil {
			return nil, err
		}
		return seq, nil

	case res.IsObject():
		m := value.Mapping{}
		var err error
		res.ForEach(func(k, el gjson.Result) bool {
			var s value.Scalar
			s, err = scalarFromJSON(el)
			if err != nil {
				return false
			}
			m[k.String()] = s
			return true
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return scalarFromJSON(res)
}
