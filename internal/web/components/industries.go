package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type industry struct {
	Icon       string
	Title      string
	Subtitle   string
	Desc       string
	Highlights []string
	Cost       string
	Efficiency string
	Compliance string
}

var industries = []industry{
	{"lucide:factory", "Cement Plants", "Bulk Dispatch",
		"High-volume cement logistics with automated dispatch, live load tracking, and compliance.",
		[]string{"Bulk tracking", "Load optimization", "Compliance checks", "Multi-destination routing"},
		"35%", "40%", "100%"},
	{"lucide:hammer", "Steel Manufacturing", "Safety & Compliance",
		"Heavy manufacturing logistics with strict safety, hazmat handling, and regulatory controls.",
		[]string{"Hazmat handling", "Safety protocols", "Quality checks", "Regulatory compliance"},
		"28%", "45%", "100%"},
	{"lucide:shopping-cart", "FMCG Warehouses", "Fast Distribution",
		"FMCG distribution with inventory sync and time-sensitive routing.",
		[]string{"Inventory sync", "Temperature control", "Last-mile routing", "Demand forecasting"},
		"32%", "50%", "99%"},
	{"lucide:car", "Automotive Plants", "JIT Logistics",
		"Just-in-time inbound & outbound coordination for automotive supply chains.",
		[]string{"JIT delivery", "Parts tracking", "Supplier sync", "Production alignment"},
		"30%", "42%", "100%"},
	{"lucide:building-2", "Multi-Plant Enterprises", "Centralized Control",
		"Enterprise-wide logistics visibility across multiple plants and locations.",
		[]string{"Cross-plant optimization", "Centralized control", "Enterprise analytics", "Resource sharing"},
		"38%", "48%", "100%"},
}

func IndustriesSection() g.Node {
	return Section(
		ID("industries"),
		Class("py-20 md:py-28"),
		Div(
			Class("max-w-7xl mx-auto px-4"),
			SectionHeader("lucide:factory", "Industries We Serve", "Industry-Specific", "Logistics Intelligence", "", ""),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(industries, func(in industry) g.Node {
					return Article(
						Class("rounded-xl border border-slate-200 p-6 space-y-4"),
						Div(
							Class("flex items-center gap-3"),
							Icon(in.Icon, ""),
							Div(
								H3(Class("font-semibold"), g.Text(in.Title)),
								P(Class("text-xs text-slate-500"), g.Text(in.Subtitle)),
							),
						),
						P(Class("text-sm text-slate-600"), g.Text(in.Desc)),
						CheckList(in.Highlights),
						StatGrid([]Stat{
							{in.Cost, "Cost Reduction"},
							{in.Efficiency, "Efficiency Gain"},
							{in.Compliance, "Compliance"},
						}),
					)
				})),
			),
		),
	)
}
