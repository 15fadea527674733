package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey int

const (
	correlationIDCtx ctxKey = iota
	requestIDCtx
	operationCtx
)

// Attribute keys shared by logs and metric tags.
const (
	CorrelationIDKey = "correlation_id"
	RequestIDKey     = "request_id"
	OperationKey     = "operation"
	DurationKey      = "duration_ms"
	ErrorKey         = "error"
)

func withValue(ctx context.Context, key ctxKey, v string) context.Context {
	return context.WithValue(ctx, key, v)
}

func valueFrom(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

// WithCorrelationID tags ctx with the id that ties a CLI invocation or
// client request to everything it causes. An empty id gets a new uuid.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return withValue(ctx, correlationIDCtx, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	return valueFrom(ctx, correlationIDCtx)
}

// WithRequestID tags ctx with the id of one HTTP request. An empty id
// gets a new uuid.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return withValue(ctx, requestIDCtx, id)
}

func RequestIDFromContext(ctx context.Context) string {
	return valueFrom(ctx, requestIDCtx)
}

// WithOperation names the todo operation in progress, e.g. "todo.create".
func WithOperation(ctx context.Context, operation string) context.Context {
	return withValue(ctx, operationCtx, operation)
}

func OperationFromContext(ctx context.Context) string {
	return valueFrom(ctx, operationCtx)
}

// NewRequestContext sets both ids for an incoming request. The correlation
// id is inherited when the caller sent one.
func NewRequestContext(ctx context.Context, requestID, parentCorrelationID string) context.Context {
	return WithCorrelationID(WithRequestID(ctx, requestID), parentCorrelationID)
}

// contextAttrs returns the ids set on ctx as log attributes.
func contextAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [...]struct {
		key string
		ctx ctxKey
	}{
		{CorrelationIDKey, correlationIDCtx},
		{RequestIDKey, requestIDCtx},
		{OperationKey, operationCtx},
	} {
		if v := valueFrom(ctx, kv.ctx); v != "" {
			attrs = append(attrs, slog.String(kv.key, v))
		}
	}
	return attrs
}
