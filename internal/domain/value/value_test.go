package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromRedis(t *testing.T) {
	cases := map[string]Kind{
		"none":   Absent,
		"string": String,
		"list":   List,
		"set":    Set,
		"zset":   SortedSet,
		"hash":   Hash,
	}
	for reply, want := range cases {
		got, err := KindFromRedis(reply)
		require.NoError(t, err, reply)
		assert.Equal(t, want, got)
	}
}

func TestKindFromRedis_Unknown(t *testing.T) {
	_, err := KindFromRedis("stream")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedKind)
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "hello", Str("hello").String())
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "-7", Int(-7).String())
	assert.Equal(t, "1.5", Float(1.5).String())
	assert.Equal(t, "2", Float(2).String())
	assert.Equal(t, "1", Bool(true).String())
	assert.Equal(t, "0", Bool(false).String())
}

func TestScalarFloat(t *testing.T) {
	f, ok := Int(3).Float()
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = Float(2.5).Float()
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = Str("1.25").Float()
	require.True(t, ok)
	assert.Equal(t, 1.25, f)

	_, ok = Str("nope").Float()
	assert.False(t, ok)

	_, ok = Bool(true).Float()
	assert.False(t, ok)
}

func TestScalarFrom(t *testing.T) {
	s, err := ScalarFrom("x")
	require.NoError(t, err)
	assert.Equal(t, Str("x"), s)

	s, err = ScalarFrom(7)
	require.NoError(t, err)
	assert.Equal(t, Int(7), s)

	s, err = ScalarFrom(uint16(9))
	require.NoError(t, err)
	assert.Equal(t, Int(9), s)

	s, err = ScalarFrom(float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, Float(0.5), s)

	s, err = ScalarFrom(true)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), s)
}

func TestScalarFrom_NonScalar(t *testing.T) {
	_, err := ScalarFrom([]string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFrom_Sequence(t *testing.T) {
	v, err := From([]any{"a", 2, true})
	require.NoError(t, err)
	assert.Equal(t, Sequence{Str("a"), Int(2), Bool(true)}, v)

	v, err = From([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, Sequence{Str("x"), Str("y")}, v)
}

func TestFrom_Mapping(t *testing.T) {
	v, err := From(map[string]any{"a": 1, "b": "two"})
	require.NoError(t, err)
	assert.Equal(t, Mapping{"a": Int(1), "b": Str("two")}, v)

	v, err = From(map[string]string{"f": "v"})
	require.NoError(t, err)
	assert.Equal(t, Mapping{"f": Str("v")}, v)
}

func TestFrom_RejectsNesting(t *testing.T) {
	_, err := From([]any{"a", []any{"nested"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = From(map[string]any{"k": map[string]any{"deep": 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFrom_Passthrough(t *testing.T) {
	seq := Sequence{Str("a")}
	v, err := From(seq)
	require.NoError(t, err)
	assert.Equal(t, seq, v)
}
