package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/fx"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/api/http/middleware"
	"github.com/Alijeyrad/optima_web/internal/api/http/router"
	"github.com/Alijeyrad/optima_web/pkg/observability"
)

// Module provides the HTTP Server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

func NewServer(p Params) *fiber.App {
	app := NewApp(p.Cfg, p.Router, p.OTel != nil && p.Cfg.Observability.Tracing.Enabled)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

// NewApp builds the fiber app with global middleware and every route
// registered, without starting it.
func NewApp(cfg *config.Config, r *router.Router, tracing bool) *fiber.App {
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	app := fiber.New(fiber.Config{
		AppName:      cfg.Site.Brand,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	if tracing {
		app.Use(observability.FiberMiddleware())
	}

	configureGlobalMiddleware(app, cfg)

	r.Register(app)
	return app
}

func configureGlobalMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New(helmet.Config{
			XSSProtection:      cfg.Server.Headers.XSSProtection,
			ContentTypeNosniff: cfg.Server.Headers.ContentTypeNosniff,
			XFrameOptions:      cfg.Server.Headers.XFrameOptions,
			ReferrerPolicy:     cfg.Server.Headers.ReferrerPolicy,

			// The page loads tailwind and iconify from their CDNs.
			CrossOriginEmbedderPolicy: "unsafe-none",
		}))
	}

	if cfg.Server.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORS.AllowOrigins,
			AllowMethods:     cfg.Server.CORS.AllowMethods,
			AllowHeaders:     cfg.Server.CORS.AllowHeaders,
			AllowCredentials: cfg.Server.CORS.AllowCredentials,
			MaxAge:           cfg.Server.CORS.MaxAgeSeconds,
		}))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${locals:request_id}] ${method} ${url} ${status}\n",
	}))
}
