package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orgball2608/insta-tweet-relay/pkg/logger"
)

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		if c.Writer.Status() >= 500 {
			log.Warn("Request failed", args...)
			return
		}
		log.Info("Request handled", args...)
	}
}
