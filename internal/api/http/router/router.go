package router

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/api/http/handler"
	"github.com/Alijeyrad/optima_web/internal/api/http/middleware"
	"github.com/Alijeyrad/optima_web/internal/service/contact"
	"github.com/Alijeyrad/optima_web/internal/service/demo"
	"github.com/Alijeyrad/optima_web/internal/web/components"
	redispkg "github.com/Alijeyrad/optima_web/pkg/redis"
)

// Repeated posts of one form or idempotency key within this window replay
// the first response.
const idempotencyLifetime = 30 * time.Minute

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg        *config.Config
	Redis      *redis.Client `optional:"true"`
	Logger     *slog.Logger  `optional:"true"`
	ContactSvc contact.Service
	DemoSvc    demo.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	limit := r.limiter()
	once := r.idempotency()

	// 3. Initialize Handlers
	pageH := handler.NewPageHandler(r.p.Cfg.Site, r.p.DemoSvc, r.p.Logger)
	demoH := handler.NewDemoHandler(r.p.DemoSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)

	// 4. Delegate to sub-files
	r.registerPageRoutes(app, pageH, limit, once)

	api := app.Group("/api")
	r.registerContactRoutes(api, contactH, limit)
	r.registerDemoRoutes(api.Group("/v1"), demoH, limit, once)
}

// limiter is shared by every POST route. It is a pass-through when rate
// limiting is disabled.
func (r *Router) limiter() fiber.Handler {
	rl := r.p.Cfg.RateLimit
	if !rl.Enabled || rl.RequestsPerMinute <= 0 {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	if r.p.Redis != nil {
		return middleware.NewLimiterWithRedis(r.p.Redis, rl.RequestsPerMinute, time.Minute)
	}
	return middleware.NewLimiter(nil, rl.RequestsPerMinute, time.Minute)
}

// idempotency is shared by the form posts and the demo request API. Responses
// live in Redis when it is configured so every instance can replay them.
func (r *Router) idempotency() fiber.Handler {
	if r.p.Redis != nil {
		return middleware.NewIdempotencyWithRedis(r.p.Redis, idempotencyLifetime)
	}
	return middleware.NewIdempotency(nil, nil, idempotencyLifetime)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return redispkg.Healthy(c.Context(), r.p.Redis) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

func (r *Router) registerPageRoutes(app *fiber.App, h *handler.PageHandler, limit, once fiber.Handler) {
	token := middleware.FormToken(components.FormTokenField)

	app.Get("/", h.Index)
	app.Post(components.PlanAction, limit, token, once, h.PlanRequest)
	app.Post(components.DemoAction, limit, token, once, h.DemoRequest)
}

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, limit fiber.Handler) {
	api.Post("/contact", limit, h.Submit)
}

func (r *Router) registerDemoRoutes(v1 fiber.Router, h *handler.DemoHandler, limit, once fiber.Handler) {
	v1.Post("/demo-requests", limit, once, h.Submit)
}
