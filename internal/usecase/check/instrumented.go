package check

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/keycheck/internal/metrics"
)

// Checker is what the transport consumes: the engine or a decorated engine.
type Checker interface {
	Exists(ctx context.Context, key string, expected ...any) (Report, error)
	Contains(ctx context.Context, key string, item any, itemValue ...any) (bool, error)
}

var _ Checker = (*Service)(nil)
var _ Checker = (*Instrumented)(nil)

// Instrumented wraps a Checker with logging and check-outcome metrics.
// The inner engine stays free of observability concerns.
type Instrumented struct {
	inner  Checker
	logger *zap.Logger
}

// NewInstrumented wraps a checker with observability.
func NewInstrumented(inner Checker, logger *zap.Logger) *Instrumented {
	return &Instrumented{inner: inner, logger: logger}
}

// Exists delegates and records the outcome.
func (i *Instrumented) Exists(ctx context.Context, key string, expected ...any) (Report, error) {
	start := time.Now()
	rep, err := i.inner.Exists(ctx, key, expected...)
	duration := time.Since(start)

	switch {
	case err != nil:
		metrics.ChecksTotal.WithLabelValues("exists", metrics.OutcomeError).Inc()
		i.logger.Error("exists check failed",
			zap.String("key", key),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	case rep.Passed:
		metrics.ChecksTotal.WithLabelValues("exists", metrics.OutcomePassed).Inc()
		i.logger.Debug("exists check passed",
			zap.String("key", key),
			zap.String("kind", string(rep.Kind)),
			zap.Duration("duration", duration),
		)
	default:
		metrics.ChecksTotal.WithLabelValues("exists", metrics.OutcomeFailed).Inc()
		i.logger.Info("exists check did not pass",
			zap.String("key", key),
			zap.String("kind", string(rep.Kind)),
			zap.Bool("found", rep.Found),
			zap.String("expected", rep.Expected),
			zap.String("actual", rep.Actual),
			zap.Duration("duration", duration),
		)
	}
	return rep, err
}

// Contains delegates and records the outcome.
func (i *Instrumented) Contains(ctx context.Context, key string, item any, itemValue ...any) (bool, error) {
	start := time.Now()
	ok, err := i.inner.Contains(ctx, key, item, itemValue...)
	duration := time.Since(start)

	switch {
	case err != nil:
		metrics.ChecksTotal.WithLabelValues("contains", metrics.OutcomeError).Inc()
		i.logger.Error("contains check failed",
			zap.String("key", key),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	case ok:
		metrics.ChecksTotal.WithLabelValues("contains", metrics.OutcomePassed).Inc()
		i.logger.Debug("contains check passed",
			zap.String("key", key),
			zap.Duration("duration", duration),
		)
	default:
		metrics.ChecksTotal.WithLabelValues("contains", metrics.OutcomeFailed).Inc()
		i.logger.Info("contains check did not pass",
			zap.String("key", key),
			zap.Duration("duration", duration),
		)
	}
	return ok, err
}
