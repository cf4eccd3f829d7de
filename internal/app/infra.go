package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/events"
	"github.com/Alijeyrad/optima_web/pkg/observability"
	redispkg "github.com/Alijeyrad/optima_web/pkg/redis"
)

// InfraModule provides all infrastructure dependencies. Redis, NATS and
// OpenTelemetry are optional: their providers yield nil when disabled.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailSender),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideEventBus),
	fx.Provide(ProvidePublisher),
)

// ProvideLogger hands out the process logger set up by the CLI.
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailSender(cfg *config.Config, logger *slog.Logger) (email.Sender, error) {
	return email.NewFromCentral(context.Background(), cfg.Email, logger)
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if !cfg.Nats.Enabled {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Nats.URL, nats.Name(cfg.Observability.ServiceName))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideEventBus(nc *nats.Conn, cfg *config.Config, logger *slog.Logger) *events.Bus {
	if nc == nil {
		return nil
	}
	return events.NewBus(nc, cfg.Nats.Subject, logger)
}

func ProvidePublisher(bus *events.Bus) events.Publisher {
	if bus == nil {
		return events.Discard{}
	}
	return bus
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
