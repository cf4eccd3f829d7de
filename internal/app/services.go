package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/service/contact"
	"github.com/Alijeyrad/optima_web/internal/service/demo"
	"github.com/Alijeyrad/optima_web/pkg/email"
	"github.com/Alijeyrad/optima_web/pkg/events"
	"github.com/Alijeyrad/optima_web/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
		ProvideDemoService,
	),
)

func ProvideContactService(cfg *config.Config, sender email.Sender, logger *slog.Logger) contact.Service {
	return contact.New(sender, cfg.Email.SalesTo, logger)
}

type DemoParams struct {
	fx.In

	Cfg       *config.Config
	Sender    email.Sender
	Publisher events.Publisher
	Logger    *slog.Logger
	// Requested so the global meter provider is installed before the
	// service creates its counter.
	OTel *observability.Provider `optional:"true"`
}

func ProvideDemoService(p DemoParams) (demo.Service, error) {
	return demo.New(demo.Config{
		SalesTo: p.Cfg.Email.SalesTo,
		Brand:   p.Cfg.Site.Brand,
	}, p.Sender, p.Publisher, p.Logger)
}
