package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/optima_web/config"
	"github.com/Alijeyrad/optima_web/internal/leadform"
	"github.com/Alijeyrad/optima_web/internal/service/demo"
	"github.com/Alijeyrad/optima_web/internal/web/components"
)

// PageHandler renders the landing page and runs the no-JS form posts
// through the lead form pipeline.
type PageHandler struct {
	site   config.SiteConfig
	svc    demo.Service
	logger *slog.Logger
}

func NewPageHandler(site config.SiteConfig, svc demo.Service, logger *slog.Logger) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{site: site, svc: svc, logger: logger}
}

func (h *PageHandler) page() components.PageData {
	return components.NewPageData(components.PageConfig{
		Brand:         h.site.Brand,
		Title:         h.site.Title,
		Description:   h.site.Description,
		OGTitle:       h.site.OGTitle,
		OGDescription: h.site.OGDescription,
	}, h.site.ContactEmail)
}

// render issues fresh form tokens, so only a repeat of this exact post is
// collapsed and a corrected resubmission goes through.
func (h *PageHandler) render(c fiber.Ctx, data components.PageData) error {
	data.Plan.Token = uuid.NewString()
	data.Demo.Token = uuid.NewString()
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return components.LandingPage(data).Render(c)
}

// GET /
func (h *PageHandler) Index(c fiber.Ctx) error {
	data := h.page()
	data.DemoOpen = c.Query("demo") == "open"
	return h.render(c, data)
}

// POST /plan-request
func (h *PageHandler) PlanRequest(c fiber.Ctx) error {
	data := h.page()
	view, toasts, err := h.submit(c, leadform.CTAVariant, components.PlanAction)
	if err != nil {
		return err
	}
	data.Plan = view
	data.Toasts = toasts
	return h.render(c, data)
}

// POST /demo-request
func (h *PageHandler) DemoRequest(c fiber.Ctx) error {
	data := h.page()
	view, toasts, err := h.submit(c, leadform.DemoVariant, components.DemoAction)
	if err != nil {
		return err
	}
	data.Demo = view
	data.DemoOpen = true
	data.Toasts = toasts
	return h.render(c, data)
}

// submit drives a fresh controller for the posted form once.
func (h *PageHandler) submit(c fiber.Ctx, v leadform.Variant, action string) (components.FormView, []leadform.Notification, error) {
	draft := leadform.Draft{}
	for _, f := range leadform.Fields {
		draft[f] = c.FormValue(string(f))
	}

	toasts := &leadform.Toasts{}
	ctrl := leadform.NewController(v, h.svc.Submitter(),
		leadform.WithStore(leadform.StoreFrom(draft)),
		leadform.WithNotifier(toasts),
		leadform.WithLogger(h.logger),
		leadform.WithoutAutoDismiss(),
	)
	if _, err := ctrl.Submit(c.Context()); err != nil {
		return components.FormView{}, nil, err
	}
	return components.FormViewFrom(ctrl, action), toasts.Drain(), nil
}
