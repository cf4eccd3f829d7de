package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Icon(name, ariaLabel string) g.Node {
	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block size-4"),
			Data("icon", name),
			Role("img"),
			Aria("label", ariaLabel),
		)
	}

	return Span(
		Class("iconify inline-block size-4"),
		Data("icon", name),
		Aria("hidden", "true"),
	)
}

// Badge is the pill shown above every section heading.
func Badge(icon, text string) g.Node {
	return Div(
		Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-blue-50 border border-blue-200 text-blue-700 text-sm font-medium"),
		Icon(icon, ""),
		g.Text(text),
	)
}

func SectionHeader(icon, badge, heading, highlight, tail, lead string) g.Node {
	return Div(
		Class("text-center mb-16"),
		Badge(icon, badge),
		H2(
			Class("mt-4 text-3xl md:text-4xl lg:text-5xl font-bold leading-tight"),
			g.Text(heading+" "),
			Span(Class("bg-gradient-to-r from-blue-600 to-cyan-500 bg-clip-text text-transparent"), g.Text(highlight)),
			g.If(tail != "", g.Text(" "+tail)),
		),
		g.If(lead != "", P(Class("mt-6 text-lg text-slate-600 max-w-3xl mx-auto"), g.Text(lead))),
	)
}

func CheckList(items []string) g.Node {
	return Ul(
		Class("space-y-2"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(
				Class("flex items-center gap-2 text-sm"),
				Span(Class("iconify size-4 text-green-600"), Data("icon", "lucide:check-circle"), Aria("hidden", "true")),
				g.Text(item),
			)
		})),
	)
}

// Stat is one headline figure. All figures on the page are static.
type Stat struct {
	Value string
	Label string
}

func StatGrid(stats []Stat) g.Node {
	return Div(
		Class("grid grid-cols-3 gap-4"),
		g.Group(g.Map(stats, func(s Stat) g.Node {
			return Div(
				Class("text-center p-4 border border-slate-200 rounded-xl"),
				Div(Class("text-2xl font-bold text-blue-600"), g.Text(s.Value)),
				Div(Class("text-sm text-slate-500"), g.Text(s.Label)),
			)
		})),
	)
}
