// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import "github.com/gin-gonic/gin"

// Health serves the health check endpoints. It answers GET/HEAD/OPTIONS and
// prevents caching so load balancers always see a fresh status.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "healthy"})
	}
}
