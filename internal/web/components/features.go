package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type workflow struct {
	Title    string
	Subtitle string
	Desc     string
	Steps    []card
	Benefits []string
}

var workflows = []workflow{
	{
		Title:    "FTL Dispatch",
		Subtitle: "Full Truck Load Management",
		Desc:     "Complete automation from vehicle induction to dispatch optimization with route planning and real-time tracking.",
		Steps: []card{
			{"lucide:scan-line", "Vehicle Induction", "Automated gate entry with RFID/QR scanning"},
			{"lucide:file-check", "Document Validation", "Document verification and compliance check"},
			{"lucide:route", "Route Optimization", "Smart route planning based on traffic, weather, and delivery windows"},
			{"lucide:truck", "Dispatch Authorization", "Automated dispatch with ERP integration and load confirmation"},
			{"lucide:bar-chart-3", "Performance Analytics", "Real-time tracking and delivery performance metrics"},
		},
		Benefits: []string{"Real-time visibility", "Automated compliance", "ERP integration"},
	},
	{
		Title:    "FTL Arrival",
		Subtitle: "Intelligent Arrival Management",
		Desc:     "Streamlined arrival processing with predictive scheduling, automated unloading coordination, and proof of delivery.",
		Steps: []card{
			{"lucide:clock", "Arrival Prediction", "ETA calculation with real-time updates"},
			{"lucide:log-in", "Gate Check-in", "Automated arrival registration and dock assignment"},
			{"lucide:package-open", "Unloading Coordination", "Optimized unloading sequence and resource allocation"},
			{"lucide:badge-check", "Quality Verification", "Automated quality checks and damage assessment"},
			{"lucide:package-check", "Proof of Delivery", "Digital POD with signatures and photo documentation"},
		},
		Benefits: []string{"Automated POD generation", "Quality tracking", "Reduced waiting time"},
	},
	{
		Title:    "PTL Shipment",
		Subtitle: "Part Truck Load Optimization",
		Desc:     "Maximize efficiency with consolidated shipments, multi-drop optimization, and intelligent load planning for partial loads.",
		Steps: []card{
			{"lucide:boxes", "Load Consolidation", "AI-driven cargo consolidation for maximum efficiency"},
			{"lucide:map-pin", "Multi-drop Planning", "Optimal route sequencing for multiple destinations"},
			{"lucide:truck", "Vehicle Assignment", "Smart vehicle selection based on capacity and route"},
			{"lucide:locate", "Cargo Tracking", "Individual shipment tracking within consolidated loads"},
			{"lucide:clipboard-check", "Multi-POD Management", "Separate delivery confirmations for each drop"},
		},
		Benefits: []string{"Reduced transportation costs", "Multi-destination tracking", "Flexible delivery options"},
	},
}

func FeaturesSection() g.Node {
	return Section(
		ID("features"),
		Class("py-20 md:py-28 bg-slate-50"),
		Div(
			Class("max-w-7xl mx-auto px-4"),
			SectionHeader("lucide:layers", "Core Features", "Powerful", "Logistics Workflows", "", ""),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(workflows, func(w workflow) g.Node {
					return Article(
						Class("rounded-2xl border border-slate-200 bg-white p-6 space-y-4"),
						H3(Class("text-xl font-bold"), g.Text(w.Title)),
						P(Class("text-sm font-medium text-blue-600"), g.Text(w.Subtitle)),
						P(Class("text-sm text-slate-600"), g.Text(w.Desc)),
						Ol(
							Class("space-y-3"),
							g.Group(g.Map(w.Steps, func(s card) g.Node {
								return Li(
									Class("flex gap-3"),
									Icon(s.Icon, ""),
									Div(
										H4(Class("text-sm font-semibold"), g.Text(s.Title)),
										P(Class("text-xs text-slate-500"), g.Text(s.Description)),
									),
								)
							})),
						),
						CheckList(w.Benefits),
					)
				})),
			),
		),
	)
}
