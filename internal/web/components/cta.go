package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CTASection(brand string, plan FormView) g.Node {
	assistant := []string{
		"Instant answers on fleet status and delivery ETAs",
		"Automated alerts for delays and compliance gaps",
		"Guided dispatch planning across plants",
	}

	var body g.Node
	if plan.Success {
		body = Div(
			Class("rounded-xl border border-green-200 bg-green-50 p-8 text-center"),
			Role("status"),
			Icon("lucide:check-circle", ""),
			H3(Class("mt-4 text-xl font-semibold"), g.Text(plan.Variant.Success.Title)),
			P(Class("mt-2 text-slate-600"), g.Text("Our team will contact you with next steps.")),
		)
	} else {
		body = LeadForm(plan, "Get My Tailored Plan")
	}

	return Section(
		ID("contact"),
		Class("py-20 md:py-28"),
		Div(
			Class("max-w-7xl mx-auto px-4 grid grid-cols-1 lg:grid-cols-2 gap-12 items-start"),
			Div(
				Class("space-y-6"),
				Badge("lucide:bot", brand+" Powered Fleet Assistant"),
				H2(
					Class("text-3xl md:text-4xl font-bold"),
					g.Text("Get a tailored plan for "),
					Span(Class("text-blue-600"), g.Text("your fleet")),
				),
				P(Class("text-lg text-slate-600"),
					g.Text("Tell us about your operations and we'll map out how "+brand+" fits your plants, fleet, and workflows."),
				),
				CheckList(assistant),
			),
			Div(
				Class("rounded-2xl border border-slate-200 bg-white p-8 shadow-sm"),
				body,
			),
		),
	)
}
