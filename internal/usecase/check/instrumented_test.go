package check

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubChecker struct {
	rep Report
	ok  bool
	err error
}

func (s *stubChecker) Exists(context.Context, string, ...any) (Report, error) {
	return s.rep, s.err
}

func (s *stubChecker) Contains(context.Context, string, any, ...any) (bool, error) {
	return s.ok, s.err
}

func TestInstrumented_Exists_Passthrough(t *testing.T) {
	inner := &stubChecker{rep: Report{Key: "k", Found: true, Passed: true}}
	i := NewInstrumented(inner, zap.NewNop())

	rep, err := i.Exists(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, inner.rep, rep)
}

func TestInstrumented_Exists_Mismatch(t *testing.T) {
	inner := &stubChecker{rep: Report{Key: "k", Found: true, Passed: false, Expected: "a", Actual: "b"}}
	i := NewInstrumented(inner, zap.NewNop())

	rep, err := i.Exists(context.Background(), "k", "a")
	require.NoError(t, err)
	assert.False(t, rep.Passed)
}

func TestInstrumented_Contains_Error(t *testing.T) {
	boom := errors.New("down")
	i := NewInstrumented(&stubChecker{err: boom}, zap.NewNop())

	_, err := i.Contains(context.Background(), "k", "item")
	assert.ErrorIs(t, err, boom)
}
