package observability

import (
	"context"
	"log/slog"
	"time"
)

// Timer measures one store or broker call.
type Timer struct {
	operation string
	start     time.Time
	logger    *slog.Logger
	metrics   Metrics
	tags      []Tag
}

// StartTimer starts timing operation, e.g. "todo.list".
func StartTimer(operation string) *Timer {
	return &Timer{operation: operation, start: time.Now()}
}

// WithLogger logs failures at error level and successes at debug level.
func (t *Timer) WithLogger(logger *slog.Logger) *Timer {
	t.logger = logger
	return t
}

func (t *Timer) WithMetrics(metrics Metrics) *Timer {
	t.metrics = metrics
	return t
}

// WithTags adds metric tags. The operation tag is always added on stop.
func (t *Timer) WithTags(tags ...Tag) *Timer {
	t.tags = append(t.tags, tags...)
	return t
}

func (t *Timer) Stop(ctx context.Context) time.Duration {
	return t.StopWithError(ctx, nil)
}

// StopWithError records the duration, and an error count when err is set.
func (t *Timer) StopWithError(ctx context.Context, err error) time.Duration {
	elapsed := time.Since(t.start)
	t.log(ctx, elapsed, err)
	t.record(elapsed, err)
	return elapsed
}

func (t *Timer) log(ctx context.Context, elapsed time.Duration, err error) {
	if t.logger == nil {
		return
	}
	ctx = WithOperation(ctx, t.operation)
	if err != nil {
		t.logger.ErrorContext(ctx, "operation failed", DurationKey, elapsed.Milliseconds(), ErrorKey, err.Error())
		return
	}
	t.logger.DebugContext(ctx, "operation completed", DurationKey, elapsed.Milliseconds())
}

func (t *Timer) record(elapsed time.Duration, err error) {
	if t.metrics == nil {
		return
	}
	tags := make([]Tag, 0, len(t.tags)+1)
	tags = append(tags, t.tags...)
	tags = append(tags, T(OperationKey, t.operation))

	t.metrics.Timing(MetricOperationDuration, elapsed, tags...)
	t.metrics.Counter(MetricOperationTotal, 1, tags...)
	if err != nil {
		t.metrics.Counter(MetricOperationErrors, 1, tags...)
	}
}

// TimeOperation runs fn under a timer and returns its error.
func TimeOperation(ctx context.Context, logger *slog.Logger, metrics Metrics, operation string, fn func() error) error {
	_, err := TimeOperationResult(ctx, logger, metrics, operation, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// TimeOperationResult runs fn under a timer and passes its result through.
func TimeOperationResult[T any](ctx context.Context, logger *slog.Logger, metrics Metrics, operation string, fn func() (T, error)) (T, error) {
	timer := StartTimer(operation).WithLogger(logger).WithMetrics(metrics)
	result, err := fn()
	timer.StopWithError(ctx, err)
	return result, err
}
