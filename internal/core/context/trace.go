package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext carries the correlation ids the logger attaches to
// every line written while serving a request.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// WithTrace stores trace information in context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns the trace information from context, or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetTraceID returns the trace id from context. Callers outside a
// request (seeding, startup) get a fresh one so log lines still
// correlate.
func GetTraceID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.TraceID
	}
	return uuid.New().String()
}

// GetRequestID returns the request id from context, or "".
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// NewTraceContext generates a trace context with fresh ids. Used when
// the incoming request carries none of its own.
func NewTraceContext() *TraceContext {
	return &TraceContext{
		TraceID:   uuid.New().String(),
		SpanID:    uuid.New().String()[:16],
		RequestID: uuid.New().String(),
	}
}
