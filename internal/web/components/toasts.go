package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Alijeyrad/optima_web/internal/leadform"
)

func Toasts(items []leadform.Notification) g.Node {
	if len(items) == 0 {
		return nil
	}

	return Div(
		Class("fixed bottom-4 right-4 z-50 space-y-2"),
		Role("status"),
		Aria("live", "polite"),
		g.Group(g.Map(items, func(n leadform.Notification) g.Node {
			class := "rounded-lg border px-4 py-3 shadow-lg bg-white border-slate-200"
			if n.Severity == leadform.SeverityDestructive {
				class = "rounded-lg border px-4 py-3 shadow-lg bg-red-600 border-red-700 text-white"
			}
			return Div(
				Class(class),
				Data("severity", string(n.Severity)),
				P(Class("font-semibold text-sm"), g.Text(n.Title)),
				g.If(n.Description != "", P(Class("text-sm opacity-90"), g.Text(n.Description))),
			)
		})),
	)
}
