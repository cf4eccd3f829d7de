package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func HeroSection(brand string) g.Node {
	trust := []struct {
		Color string
		Text  string
	}{
		{"bg-green-500", "Reduced Plant Logistics Cost"},
		{"bg-blue-500", "100% Paperless Operations"},
		{"bg-amber-500", "Real-time Fleet & Plant Visibility"},
	}

	return Section(
		ID("home"),
		Class("relative min-h-screen flex items-center pt-24 overflow-hidden"),
		Div(
			Class("mx-auto w-full max-w-7xl px-4 grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
			Div(
				Class("space-y-6 text-center lg:text-left"),
				Badge("lucide:zap", brand+" - Plant Logistics Platform"),
				H1(
					Class("text-4xl sm:text-5xl xl:text-6xl font-bold leading-tight"),
					Span(Class("bg-gradient-to-r from-blue-600 to-cyan-500 bg-clip-text text-transparent"), g.Text(brand)),
					Br(),
					g.Text("Intelligent Plant Logistics & "),
					Span(Class("text-blue-600"), g.Text("Transportation Management")),
				),
				P(
					Class("text-slate-600 xl:text-lg max-w-2xl mx-auto lg:mx-0"),
					g.Text(brand+" simplifies plant-level logistics and transportation management by digitizing vehicle induction, compliance checks, dispatch coordination, and delivery confirmation, helping enterprises reduce delays, cut operational overhead, and run paperless logistics across manufacturing locations."),
				),
				A(
					Href(DemoHref),
					Class("inline-flex items-center gap-2 rounded-md bg-gradient-to-r from-blue-500 to-cyan-500 px-6 py-3 text-white shadow-lg"),
					g.Text("Request "+brand+" Demo"),
					Icon("lucide:play", ""),
				),
			),
			Div(
				Class("flex flex-col items-center lg:items-end gap-6"),
				Ul(
					Class("flex flex-wrap justify-center lg:justify-end gap-4 text-sm text-slate-500"),
					g.Group(g.Map(trust, func(t struct {
						Color string
						Text  string
					}) g.Node {
						return Li(
							Class("flex items-center gap-2"),
							Span(Class("w-2 h-2 rounded-full "+t.Color)),
							g.Text(t.Text),
						)
					})),
				),
			),
		),
	)
}
