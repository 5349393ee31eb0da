package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimiter throttles login attempts per email+IP through Redis.
// Login is the only endpoint an unauthenticated caller can brute-force, so
// the counter keys on the credential being guessed, not just the client.
// A nil Redis client disables the limiter (local development without Redis).
func LoginRateLimiter(client *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		var body struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindBodyWithJSON(&body); err != nil || body.Email == "" {
			// Malformed bodies fall through to the handler's own validation.
			c.Next()
			return
		}

		key := "login_attempts:" + strings.ToLower(strings.TrimSpace(body.Email)) + ":" + c.ClientIP()

		ctx := c.Request.Context()
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limiter unavailable"})
			c.Abort()
			return
		}

		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limiter unavailable"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := client.TTL(ctx, key).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many login attempts, try again later",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
