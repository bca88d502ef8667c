package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

const requestIDKey = "request-id"

// RequestID propagates the caller's X-Request-Id header, generating a fresh
// UUID when the header is absent. The id is echoed on the response and made
// available to the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the request id set by the RequestID middleware.
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
