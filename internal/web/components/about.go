package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type card struct {
	Icon        string
	Title       string
	Description string
}

func AboutSection(brand string) g.Node {
	benefits := []card{
		{"lucide:trending-up", "30% Cost Reduction", "Optimize routes, reduce fuel costs, and minimize operational overhead with AI-driven insights."},
		{"lucide:zap", "100% Paperless Workflows", "Eliminate manual documentation with digital processes and automated compliance tracking."},
		{"lucide:globe", "Real-time GPS Tracking", "Monitor every vehicle with precision location data and predictive arrival times."},
		{"lucide:shield", "AI-Powered Validation", "Automated document verification, compliance checks, and anomaly detection."},
	}

	steps := []struct {
		Step  string
		Title string
		Desc  string
	}{
		{"01", "Vehicle Induction", "Automated entry validation"},
		{"02", "Document Processing", "AI-powered verification"},
		{"03", "Route Optimization", "Smart dispatch planning"},
		{"04", "Real-time Tracking", "GPS monitoring & alerts"},
		{"05", "Proof of Delivery", "Digital confirmation"},
	}

	features := []string{
		"Centralized Logistics Management",
		"Vehicle Induction to Delivery Automation",
		"ERP Integration (SAP, Oracle, Tally)",
		"Mobile Dashboard & Alerts",
		"Predictive Analytics & Insights",
		"Multi-plant Enterprise Visibility",
	}

	return Section(
		ID("about"),
		Class("py-20 md:py-28 bg-slate-50"),
		Div(
			Class("max-w-7xl mx-auto px-4"),
			SectionHeader("lucide:brain", "Why Choose "+brand, "Revolutionizing", "Logistics Management", "with AI",
				brand+" transforms traditional logistics operations into intelligent, automated workflows. From vehicle induction to proof of delivery, every step is powered by AI to maximize efficiency and minimize costs."),

			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 mb-16"),
				g.Group(g.Map(benefits, func(b card) g.Node {
					return Div(
						Class("rounded-xl border border-slate-200 bg-white p-6 text-center"),
						Icon(b.Icon, ""),
						H3(Class("mt-4 font-semibold text-lg"), g.Text(b.Title)),
						P(Class("mt-2 text-sm text-slate-600"), g.Text(b.Description)),
					)
				})),
			),

			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-start"),
				Div(
					Class("rounded-2xl border border-slate-200 bg-white p-8"),
					H3(Class("text-2xl font-bold mb-6"), g.Text("AI-First Automation")),
					Ol(
						Class("space-y-4"),
						g.Group(g.Map(steps, func(s struct {
							Step  string
							Title string
							Desc  string
						}) g.Node {
							return Li(
								Class("flex items-center gap-4"),
								Span(Class("flex size-10 items-center justify-center rounded-full bg-blue-600 text-sm font-bold text-white"), g.Text(s.Step)),
								Div(
									H4(Class("font-semibold"), g.Text(s.Title)),
									P(Class("text-sm text-slate-500"), g.Text(s.Desc)),
								),
							)
						})),
					),
				),
				Div(
					Class("space-y-8"),
					CheckList(features),
					StatGrid([]Stat{{"30%", "Cost Savings"}, {"100%", "Paperless"}, {"24/7", "Monitoring"}}),
				),
			),
		),
	)
}
