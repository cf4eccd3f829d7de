package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavItem struct {
	Label  string
	Anchor string
}

// NavItems lists the page sections in scroll order.
var NavItems = []NavItem{
	{"Home", "home"},
	{"About", "about"},
	{"Industries", "industries"},
	{"Features", "features"},
	{"Analytics", "analytics"},
	{"Roadmap", "roadmap"},
	{"Contact", "contact"},
}

func PageNav(brand string) g.Node {
	return Header(
		Class("fixed inset-x-0 top-0 z-40 bg-white/80 backdrop-blur border-b border-slate-200"),
		Nav(
			Class("mx-auto max-w-7xl flex items-center justify-between px-4 h-16"),
			Aria("label", "Main"),
			A(Href("#home"), Class("font-bold text-xl"), g.Text(brand)),
			Ul(
				Class("hidden md:flex items-center gap-6 text-sm"),
				g.Group(g.Map(NavItems, func(item NavItem) g.Node {
					return Li(A(Href("#"+item.Anchor), Class("hover:text-blue-600"), g.Text(item.Label)))
				})),
			),
			A(Href(DemoHref), Class("btn rounded-md bg-blue-600 px-4 py-2 text-sm text-white"), g.Text("Request Demo")),
		),
	)
}
