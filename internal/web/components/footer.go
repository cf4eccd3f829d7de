package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(brand, contactEmail string) g.Node {
	return Footer(
		Class("border-t border-slate-200 py-10"),
		Div(
			Class("max-w-7xl mx-auto px-4 flex flex-col md:flex-row items-center justify-between gap-4 text-sm text-slate-500"),
			Div(
				Span(Class("font-bold text-slate-900"), g.Text(brand)),
				g.Text(" - AI-Powered Logistics & Transportation Management"),
			),
			g.If(contactEmail != "",
				A(Href("mailto:"+contactEmail), Class("hover:text-blue-600"), g.Text(contactEmail)),
			),
			P(g.Text("© 2018 "+brand+". All Rights Reserved.")),
		),
	)
}
