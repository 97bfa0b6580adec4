package assets

import _ "embed"

// PlaceholderSVG is the poster shown when a show has no artwork.
//
//go:embed placeholder.svg
var PlaceholderSVG []byte
