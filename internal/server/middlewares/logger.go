package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger logs one line when a request starts and one when it completes,
// using the "http" named logger. Handler errors recorded on the gin context
// are logged separately.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := zap.S().Named("http")
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		log.Debugw("request started",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
			"request_id", RequestIDFromContext(c),
		)

		c.Next()

		for _, e := range c.Errors.Errors() {
			log.Errorw("request error",
				"method", c.Request.Method,
				"path", path,
				"request_id", RequestIDFromContext(c),
				"error", e,
			)
		}

		log.Infow("request completed",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", RequestIDFromContext(c),
		)
	}
}
