package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type milestone struct {
	Quarter string
	Title   string
	Desc    string
	Status  string
	Items   []string
}

var milestones = []milestone{
	{"Q1 2025", "AI Route Optimization",
		"Advanced machine learning algorithms for dynamic route planning with real-time traffic, weather, and delivery window optimization.",
		"in-progress", []string{"Dynamic route planning", "Traffic pattern analysis", "Weather integration", "Delivery window optimization"}},
	{"Q2 2025", "ERP Integrations",
		"Seamless connectivity with major ERP systems including SAP, Oracle, and Tally for unified business operations.",
		"planned", []string{"SAP integration", "Oracle connectivity", "Tally synchronization", "Custom API endpoints"}},
	{"Q3 2025", "Carbon Footprint Tracking",
		"Comprehensive environmental impact monitoring with carbon emission tracking and sustainability reporting.",
		"planned", []string{"Emission calculations", "Sustainability reports", "Green route suggestions", "Carbon offset tracking"}},
	{"Q4 2025", "Predictive Vehicle Maintenance",
		"Predictive maintenance system to prevent breakdowns and optimize vehicle lifecycle management.",
		"planned", []string{"Predictive diagnostics", "Maintenance scheduling", "Parts inventory", "Downtime prevention"}},
}

func statusLabel(status string) (label, class string) {
	switch status {
	case "completed":
		return "Completed", "bg-green-100 text-green-700"
	case "in-progress":
		return "In Progress", "bg-blue-100 text-blue-700"
	default:
		return "Planned", "bg-slate-100 text-slate-600"
	}
}

func RoadmapSection() g.Node {
	return Section(
		ID("roadmap"),
		Class("py-20 md:py-28 bg-slate-50"),
		Div(
			Class("max-w-5xl mx-auto px-4"),
			SectionHeader("lucide:calendar", "Product Roadmap 2025+", "The Future of", "AI Logistics", "", ""),
			Ol(
				Class("relative border-s border-slate-300 space-y-10"),
				g.Group(g.Map(milestones, func(m milestone) g.Node {
					label, class := statusLabel(m.Status)
					return Li(
						Class("ms-6"),
						Div(
							Class("flex items-center gap-3"),
							Span(Class("text-sm font-semibold text-blue-600"), g.Text(m.Quarter)),
							Span(Class("rounded-full px-2 py-0.5 text-xs "+class), g.Text(label)),
						),
						H3(Class("mt-2 text-xl font-bold"), g.Text(m.Title)),
						P(Class("mt-1 text-sm text-slate-600"), g.Text(m.Desc)),
						Div(Class("mt-3"), CheckList(m.Items)),
					)
				})),
			),
		),
	)
}
