package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Alijeyrad/optima_web/internal/leadform"
)

// Form endpoints and the no-JS link that opens the demo dialog.
const (
	PlanAction = "/plan-request"
	DemoAction = "/demo-request"
	DemoHref   = "/?demo=open#demo-dialog"
	HomeHref   = "/#home"
)

type PageData struct {
	Config       PageConfig
	ContactEmail string
	Plan         FormView
	Demo         FormView
	DemoOpen     bool
	Toasts       []leadform.Notification
}

// NewPageData returns a page with both forms empty.
func NewPageData(config PageConfig, contactEmail string) PageData {
	return PageData{
		Config:       config,
		ContactEmail: contactEmail,
		Plan:         EmptyFormView(leadform.CTAVariant, PlanAction),
		Demo:         EmptyFormView(leadform.DemoVariant, DemoAction),
	}
}

func LandingPage(data PageData) g.Node {
	brand := data.Config.Brand
	if brand == "" {
		brand = "OPTIMA"
	}

	config := data.Config
	if data.DemoOpen && data.Demo.Success && data.Demo.Variant.AutoDismiss > 0 {
		config.RefreshAfter = data.Demo.Variant.AutoDismiss
		config.RefreshURL = HomeHref
	}

	return Layout(config,
		PageNav(brand),
		Main(
			HeroSection(brand),
			AboutSection(brand),
			IndustriesSection(),
			FeaturesSection(),
			AnalyticsSection(),
			RoadmapSection(),
			CTASection(brand, data.Plan),
		),
		PageFooter(brand, data.ContactEmail),
		DemoDialog(data.Demo, data.DemoOpen),
		Toasts(data.Toasts),
	)
}
