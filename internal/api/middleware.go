package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sitesafe-engine-go/internal/logging"
)

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())

	s.router.Use(requestContextMiddleware())

	s.router.Use(s.loggingMiddleware())

	s.router.Use(corsMiddleware())
}

// requestContextMiddleware seeds per-request fields for the context
// loggers in internal/logging.
func requestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(logging.RequestIDKey, fmt.Sprintf("%d", time.Now().UnixNano()))
		c.Set(logging.StartTimeKey, time.Now())
		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logging.Debug(c).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Msg("Request handled")
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
