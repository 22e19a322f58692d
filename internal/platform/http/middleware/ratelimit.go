package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/shared/ratelimiter"
)

// RateLimit はクライアントIPとルートごとにリクエスト数を制限します。
// 上限を超えた場合は 429 と Retry-After ヘッダーを返します。
func RateLimit(l ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + " " + c.FullPath()
		ok, wait := l.Allow(key)
		if ok {
			c.Next()
			return
		}

		secs := int(math.Ceil(wait.Seconds()))
		if secs < 1 {
			secs = 1
		}
		slog.Warn("rate limit exceeded",
			"path", c.FullPath(),
			"remote_addr", c.ClientIP(),
			"retry_after", secs,
			"request_id", c.GetString(ContextRequestID),
		)
		c.Header("Retry-After", strconv.Itoa(secs))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	}
}
