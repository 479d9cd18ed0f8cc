package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Limit       int
	Period      time.Duration
}

// RateLimiterMiddleware counts requests per route and caller in a fixed
// window. Callers are keyed by owner id when authenticated, else client IP.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			identifier := c.RealIP()
			if ownerID := OwnerID(c); ownerID != "" {
				identifier = ownerID
			}
			key := fmt.Sprintf("%s:%s:%s", constants.KeyRateLimit, c.Path(), identifier)
			ctx := c.Request().Context()

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.Err(err))
				return next(c)
			}
			if count64 == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				retryAfter := config.RedisClient.TTL(ctx, key).Val()
				if retryAfter <= 0 {
					retryAfter = config.Period
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(retryAfter.Seconds()), 10))
				return utils.TooManyRequestsResponse(c)
			}

			return next(c)
		}
	}
}
