package views

import "strings"

// PlaceholderPath is where the bundled poster placeholder is served
const PlaceholderPath = "/static/placeholder.svg"

// Image sizes understood by the media database image service
const (
	SizeOriginal = "original"
	SizePoster   = "w500"
	SizeThumb    = "w185"
)

// ImageURL joins the image service base, a size and a media database image path.
func ImageURL(base, size, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}

// PosterURL returns the poster URL for path, or the placeholder when path is empty.
func PosterURL(base, size, path string) string {
	if path == "" {
		return PlaceholderPath
	}
	return ImageURL(base, size, path)
}
