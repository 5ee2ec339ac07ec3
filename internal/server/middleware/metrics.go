package middleware

import (
	"time"

	"github.com/averycrespi/mcp-apps/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request on the recorder, labelled by route pattern
func Metrics(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		recorder.RecordHTTPRequest(start, path, c.Request.Method, c.Writer.Status())
	}
}
