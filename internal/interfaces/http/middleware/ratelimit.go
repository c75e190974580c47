package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketplace/internal/infrastructure/ratelimit"
	"marketplace/internal/shared/logger"
	"marketplace/internal/shared/utils"
)

// RateLimiter limits requests per client IP using a shared fixed-window counter.
// Each route gets its own bucket so a burst on login does not eat the register quota.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, policy ratelimit.Policy, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  policy,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s:%s", c.ClientIP(), c.FullPath())

		result, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// Fail open when Redis is unavailable.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if result.Remaining >= 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.policy.Requests))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
