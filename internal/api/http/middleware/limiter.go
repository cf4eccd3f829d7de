package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewLimiter limits each client IP to max requests per expiration window.
// A nil storage keeps the counters in memory.
func NewLimiter(storage fiber.Storage, max int, expiration time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Storage: storage,

		// sliding window
		Max:               max,
		Expiration:        expiration,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	})
}

// NewLimiterWithRedis shares the counters between instances through rdb.
func NewLimiterWithRedis(rdb *redis.Client, max int, expiration time.Duration) fiber.Handler {
	return NewLimiter(fiberredis.NewFromConnection(rdb), max, expiration)
}
