package http

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/leavedesk/leave-service/internal/config"
	"github.com/leavedesk/leave-service/internal/persistence"
	apperrors "github.com/leavedesk/leave-service/pkg/util"
)

// RateLimiter bounds requests per client IP within a fixed window using a
// Redis counter. When Redis is unreachable the limiter fails open rather
// than blocking traffic.
func RateLimiter(cfg config.RateLimitConfig, store *persistence.Redis, logger *zap.Logger) fiber.Handler {
	window := cfg.Window()
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || store == nil || store.Client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s", c.IP())
		ctx := c.Context()

		count, err := store.Client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := store.Client.Expire(ctx, key, window).Err(); err != nil {
				logger.Warn("rate limiter expire failed", zap.Error(err))
			}
		}

		if count > int64(cfg.MaxRequests) {
			return apperrors.NewDomainError("RATE_LIMITED",
				"too many requests from this IP, please try again later",
				http.StatusTooManyRequests, nil)
		}
		return c.Next()
	}
}
