package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appctx "fleetledger/internal/core/context"
)

// Trace middleware propagates request and trace identifiers.
// Incoming X-Request-ID / X-Trace-ID headers are honored so identifiers
// survive proxy hops; missing ones are generated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		trace := &appctx.TraceContext{
			TraceID:   traceID,
			SpanID:    uuid.New().String()[:16],
			RequestID: requestID,
		}

		ctx := appctx.WithTrace(c.Request.Context(), trace)
		c.Request = c.Request.WithContext(ctx)

		c.Set("trace_id", traceID)
		c.Set("request_id", requestID)

		c.Header("X-Request-ID", requestID)
		c.Header("X-Trace-ID", traceID)

		c.Next()
	}
}
