package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// traceIDKey is the gin context key for the per-request trace id.
const traceIDKey = "trace_id"

// TraceMiddleware assigns each request a trace id, echoed in the response
// headers and attached to every log entry via the request-scoped logger.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(traceIDKey, id)
		c.Header("X-Trace-Id", id)
		c.Next()
	}
}
