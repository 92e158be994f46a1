package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewRateLimiter limits each client IP to max requests per window. Counters
// live in Redis when rdb is set so every instance shares them; otherwise they
// stay in process memory.
func NewRateLimiter(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	cfg := limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(ctx *fiber.Ctx) string {
			return "ratelimit:" + ctx.IP()
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(429, "Too many requests, please slow down"))
		},
	}
	if rdb != nil {
		cfg.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(cfg)
}
