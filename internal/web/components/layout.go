package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Brand         string
	Title         string
	Description   string
	OGTitle       string
	OGDescription string

	// RefreshAfter, when set, reloads RefreshURL after the delay.
	RefreshAfter time.Duration
	RefreshURL   string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Brand == "" {
		config.Brand = "OPTIMA"
	}

	if config.Title == "" {
		config.Title = "OPTIMA - AI-Powered Logistics & Transportation Management"
	}

	if config.OGTitle == "" {
		config.OGTitle = config.Title
	}

	if config.OGDescription == "" {
		config.OGDescription = config.Description
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),
				g.If(config.RefreshAfter > 0, Meta(g.Attr("http-equiv", "refresh"), Content(refreshContent(config)))),

				Meta(g.Attr("property", "og:title"), Content(config.OGTitle)),
				Meta(g.Attr("property", "og:description"), Content(config.OGDescription)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-white text-slate-900 antialiased"),
				g.Group(content),
			),
		),
	})
}

func refreshContent(config PageConfig) string {
	content := strconv.FormatFloat(config.RefreshAfter.Seconds(), 'f', -1, 64)
	if config.RefreshURL != "" {
		content += ";url=" + config.RefreshURL
	}
	return content
}
