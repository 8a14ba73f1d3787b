package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/telemetry"
)

// Logging emits a structured log per request. Handlers may set "renderer"
// and "documentBytes" on the context to enrich the line.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		renderer, _ := c.Get("renderer")
		documentBytes, _ := c.Get("documentBytes")

		telemetry.Info("request.complete", map[string]any{
			"request_id":     RequestIDFromContext(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         c.Writer.Status(),
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"renderer":       renderer,
			"document_bytes": documentBytes,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		})
	}
}
