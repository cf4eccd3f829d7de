package redis

import (
	"time"

	"github.com/samber/lo"

	"github.com/Alijeyrad/optima_web/config"
)

// Config holds Redis connection settings
type Config struct {
	Addr     string
	DB       int
	Username string
	Password string

	// Connection pool settings
	PoolSize     int
	MinIdleConns int

	// Timeouts
	DialTimeoutSeconds  int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		Addr:                "localhost:6379",
		DB:                  0,
		PoolSize:            10,
		MinIdleConns:        2,
		DialTimeoutSeconds:  5,
		ReadTimeoutSeconds:  3,
		WriteTimeoutSeconds: 3,
	}
}

// DialTimeout returns the dial timeout as a duration
func (c Config) DialTimeout() time.Duration {
	return seconds(c.DialTimeoutSeconds, 5)
}

// ReadTimeout returns the read timeout as a duration
func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds, 3)
}

// WriteTimeout returns the write timeout as a duration
func (c Config) WriteTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds, 3)
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}

// FromCentralConfig converts central config.RedisConfig to package Config.
// Zero pool and timeout settings fall back to DefaultConfig.
func FromCentralConfig(c config.RedisConfig) Config {
	def := DefaultConfig()
	return Config{
		Addr:                c.Addr,
		DB:                  c.DB,
		Username:            c.Username,
		Password:            c.Password,
		PoolSize:            lo.CoalesceOrEmpty(c.PoolSize, def.PoolSize),
		MinIdleConns:        lo.CoalesceOrEmpty(c.MinIdleConns, def.MinIdleConns),
		DialTimeoutSeconds:  lo.CoalesceOrEmpty(c.DialTimeoutSeconds, def.DialTimeoutSeconds),
		ReadTimeoutSeconds:  lo.CoalesceOrEmpty(c.ReadTimeoutSeconds, def.ReadTimeoutSeconds),
		WriteTimeoutSeconds: lo.CoalesceOrEmpty(c.WriteTimeoutSeconds, def.WriteTimeoutSeconds),
	}
}
