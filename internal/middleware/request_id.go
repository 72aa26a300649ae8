package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/namegenius/api/internal/logger"
)

// RequestID assigns every request a request ID, threads it through the request
// context for log correlation, and echoes it back in the X-Request-ID header.
// An inbound X-Request-ID is honored so clients can correlate retries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
