package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type metricCard struct {
	Title  string
	Value  string
	Change string
	Desc   string
	Items  []string
}

// The figures below are illustrative; there is no live data feed.
var metricCards = []metricCard{
	{"Cost Analytics", "₹2.4M", "-18%", "Monthly freight cost with AI optimization",
		[]string{"Freight cost per km", "Fuel efficiency tracking", "Idle cost analysis", "Route optimization savings"}},
	{"Fleet Utilization", "87%", "+12%", "Vehicle capacity optimization rate",
		[]string{"Load factor analysis", "Vehicle assignment efficiency", "Capacity planning", "Resource allocation"}},
	{"On-Time Delivery", "94.2%", "+5.8%", "Delivery performance metrics",
		[]string{"Delivery time accuracy", "Customer satisfaction", "SLA compliance", "Performance benchmarks"}},
	{"Compliance Score", "99.1%", "+2.1%", "Regulatory compliance rate",
		[]string{"Document validity", "Safety compliance", "Permit tracking", "Audit readiness"}},
}

var sampleAlerts = []string{
	"Vehicle ABC-123 permit expires in 3 days",
	"Route optimization suggests 15% fuel savings",
	"All vehicles completed safety inspection",
}

func AnalyticsSection() g.Node {
	return Section(
		ID("analytics"),
		Class("py-20 md:py-28"),
		Div(
			Class("max-w-7xl mx-auto px-4"),
			SectionHeader("lucide:activity", "Analytics & Insights", "Data-Driven", "Intelligence", "for Smarter Decisions", ""),
			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 mb-12"),
				g.Group(g.Map(metricCards, func(m metricCard) g.Node {
					changeClass := "text-green-600"
					// Falling cost is good news too.
					if strings.HasPrefix(m.Change, "-") && m.Title != "Cost Analytics" {
						changeClass = "text-red-600"
					}
					return Article(
						Class("rounded-xl border border-slate-200 p-6 space-y-2"),
						H3(Class("text-sm font-medium text-slate-500"), g.Text(m.Title)),
						Div(
							Class("flex items-baseline gap-2"),
							Span(Class("text-3xl font-bold"), g.Text(m.Value)),
							Span(Class("text-sm "+changeClass), g.Text(m.Change)),
						),
						P(Class("text-xs text-slate-500"), g.Text(m.Desc)),
						CheckList(m.Items),
					)
				})),
			),
			Div(
				Class("rounded-xl border border-slate-200 p-6"),
				H3(Class("font-semibold mb-4"), g.Text("Recent Alerts")),
				Ul(
					Class("space-y-2 text-sm"),
					g.Group(g.Map(sampleAlerts, func(a string) g.Node {
						return Li(Class("flex items-center gap-2"), Icon("lucide:bell", ""), g.Text(a))
					})),
				),
			),
		),
	)
}
