// Package views renders site pages as gomponents node trees.
package views

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/views/icons"
)

const (
	htmxScriptURL     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindScriptURL = "https://cdn.tailwindcss.com"
)

// Options carries the site-wide settings every page needs.
type Options struct {
	SiteName     string
	ImageBaseURL string
	Language     string
	Widgets      Widgets
}

func (o Options) siteName() string {
	if o.SiteName == "" {
		return config.DefaultSiteName
	}
	return o.SiteName
}

func (o Options) imageBaseURL() string {
	if o.ImageBaseURL == "" {
		return config.DefaultTMDBImageBaseURL
	}
	return o.ImageBaseURL
}

func (o Options) language() string {
	if o.Language == "" {
		return config.DefaultLanguage
	}
	return o.Language
}

// document wraps body in the shared HTML shell. title is the full <title> text.
func document(opts Options, title, description string, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: description,
		Language:    opts.language(),
		Head: []g.Node{
			html.Script(html.Src(tailwindScriptURL)),
			html.Script(html.Src(htmxScriptURL), html.Defer()),
		},
		Body: []g.Node{
			html.Class("bg-neutral-800 text-neutral-200"),
			g.Group(body),
		},
	})
}

// Navbar is the site navigation. Links are htmx-boosted and the spinner shows while
// a boosted navigation is in flight.
func Navbar(siteName string) g.Node {
	return html.Nav(
		html.Class("flex flex-row items-center justify-between p-3"),
		hx.Boost("true"),
		hx.Indicator("#nav-spinner"),
		html.A(
			html.Href("/"),
			html.Class("font-bold text-xl text-red-600"),
			g.Text(siteName),
		),
		icons.Spinner(
			html.ID("nav-spinner"),
			html.Class("htmx-indicator h-5 w-5 animate-spin text-red-600"),
			html.Aria("hidden", "true"),
		),
	)
}

// NotFoundPage is the fixed view for unknown or unavailable pages.
func NotFoundPage(opts Options) g.Node {
	return document(opts, "404 - "+opts.siteName(), "",
		Navbar(opts.siteName()),
		html.Main(
			html.ID("not-found"),
			html.Class("flex flex-col justify-center items-center h-[80vh]"),
			html.H1(html.Class("font-bold text-3xl text-neutral-100"), g.Text("404")),
			html.P(html.Class("text-neutral-300"), g.Text("This page could not be found.")),
		),
	)
}

// ErrorPage is the generic failure view for unrecovered faults.
func ErrorPage(opts Options) g.Node {
	return document(opts, "500 - "+opts.siteName(), "",
		Navbar(opts.siteName()),
		html.Main(
			html.ID("server-error"),
			html.Class("flex flex-col justify-center items-center h-[80vh]"),
			html.H1(html.Class("font-bold text-3xl text-neutral-100"), g.Text("500")),
			html.P(html.Class("text-neutral-300"), g.Text("Something went wrong. Please try again later.")),
		),
	)
}
