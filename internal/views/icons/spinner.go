// Package icons holds inline SVG icon components.
package icons

import (
	g "maragu.dev/gomponents"
)

const spinnerPath = "M10 3.5A6.5 6.5 0 0 0 3.5 10 .75.75 0 0 1 2 10a8 8 0 1 1 8 8 .75.75 0 0 1 0-1.5 6.5 6.5 0 1 0 0-13z"

// Spinner renders the loading spinner. attrs are spread onto the <svg> element,
// so callers control size, class and id.
func Spinner(attrs ...g.Node) g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 20 20"),
		g.Group(attrs),
		g.El("path",
			g.Attr("d", spinnerPath),
			g.Attr("fill", "currentColor"),
		),
	)
}
