package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// DemoDialog is the request-a-demo modal. It is rendered closed unless open
// is set, which the server does when the visitor asked for it or when a
// posted demo form needs to show errors or the success panel. LandingPage
// closes the success panel by reloading the page.
func DemoDialog(demo FormView, open bool) g.Node {
	var body g.Node
	if demo.Success {
		body = Div(
			Class("py-8 text-center"),
			Role("status"),
			Icon("lucide:check-circle", ""),
			H3(Class("mt-4 text-xl font-semibold"), g.Text("Thank you!")),
			P(Class("mt-2 text-slate-600"), g.Text(demo.Variant.Success.Description)),
			Form(
				Method("dialog"),
				Class("mt-6"),
				Button(Type("submit"), Class("rounded-md border border-slate-300 px-4 py-2 text-sm"), g.Text("Close")),
			),
		)
	} else {
		body = g.Group([]g.Node{
			P(Class("mb-6 text-sm text-slate-600"), g.Text("See how AI-powered logistics can transform your operations.")),
			LeadForm(demo, "Request Demo"),
		})
	}

	return g.El("dialog",
		ID("demo-dialog"),
		Class("w-full max-w-2xl rounded-2xl p-8 backdrop:bg-black/50"),
		Aria("labelledby", "demo-dialog-title"),
		g.If(open, g.Attr("open")),
		Div(
			Class("flex items-center justify-between mb-2"),
			H2(ID("demo-dialog-title"), Class("text-2xl font-bold"), g.Text("Request a Live Demo")),
			A(Href(HomeHref), Class("text-slate-500"), Icon("lucide:x", "Close")),
		),
		body,
	)
}
