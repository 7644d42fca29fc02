package server

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manav03panchal/clubportal/internal/logging"
)

// RequestIDHeader carries the request ID back to the client.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the request context, reusing the
// client's when one is sent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = logging.GenerateRequestID()
		}
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs each request at debug level, and failures at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		args := []any{
			logging.KeyMethod, c.Request.Method,
			logging.KeyRoute, c.FullPath(),
			"code", c.Writer.Status(),
			logging.KeyDuration, time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			logging.WarnContext(ctx, "request failed", args...)
			return
		}
		logging.DebugContext(ctx, "request", args...)
	}
}

// Serialize runs handlers one at a time. The tables are rewritten whole on
// every submission, so two overlapping posts would drop one of the rows.
func Serialize() gin.HandlerFunc {
	var mu sync.Mutex
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
