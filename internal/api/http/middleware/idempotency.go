package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/idempotency"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// HeaderIdempotencyKey is read by NewIdempotency. Form posts carry the key
	// in a hidden field instead and FormToken copies it here.
	HeaderIdempotencyKey = "X-Idempotency-Key"

	lockPrefix   = "optima:idempotency:lock:"
	lockTTL      = 30 * time.Second
	lockWait     = 15 * time.Second
	lockInterval = 20 * time.Millisecond
)

var ErrLockTimeout = errors.New("idempotency: timed out waiting for key")

// NewIdempotency answers every POST that repeats an idempotency key with the
// response recorded for the first one. A request arriving while the first is
// still running waits for it. A nil storage and lock keep state in memory.
func NewIdempotency(storage fiber.Storage, lock idempotency.Locker, lifetime time.Duration) fiber.Handler {
	return idempotency.New(idempotency.Config{
		Storage:   storage,
		Lock:      lock,
		Lifetime:  lifetime,
		KeyHeader: HeaderIdempotencyKey,
		KeyHeaderValidate: func(k string) error {
			return uuid.Validate(k)
		},
		KeepResponseHeaders: []string{fiber.HeaderContentType},
	})
}

// NewIdempotencyWithRedis shares recorded responses and key locks between
// instances through rdb.
func NewIdempotencyWithRedis(rdb *redis.Client, lifetime time.Duration) fiber.Handler {
	return NewIdempotency(fiberredis.NewFromConnection(rdb), NewRedisLock(rdb), lifetime)
}

// FormToken promotes the form field holding a rendered form's token to the
// idempotency key header. Malformed tokens are ignored.
func FormToken(field string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if tok := c.FormValue(field); tok != "" && uuid.Validate(tok) == nil {
			c.Request().Header.Set(HeaderIdempotencyKey, tok)
		}
		return c.Next()
	}
}

// RedisLock is an idempotency.Locker built on SET NX. Locks expire after
// lockTTL so a crashed holder cannot block a key forever.
type RedisLock struct {
	rdb *redis.Client
}

func NewRedisLock(rdb *redis.Client) *RedisLock {
	return &RedisLock{rdb: rdb}
}

func (l *RedisLock) Lock(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()

	ticker := time.NewTicker(lockInterval)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, lockPrefix+key, 1, lockTTL).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return ErrLockTimeout
			}
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ErrLockTimeout
		case <-ticker.C:
		}
	}
}

func (l *RedisLock) Unlock(key string) error {
	return l.rdb.Del(context.Background(), lockPrefix+key).Err()
}

var _ idempotency.Locker = (*RedisLock)(nil)
