package icons

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"maragu.dev/gomponents/html"
)

func TestSpinner(t *testing.T) {
	var sb strings.Builder
	if err := Spinner(html.ID("nav-spinner"), html.Class("h-5 w-5")).Render(&sb); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Failed to parse SVG markup: %v", err)
	}

	svg := doc.Find("svg#nav-spinner")
	if svg.Length() != 1 {
		t.Fatalf("Expected one svg#nav-spinner, got %d in %s", svg.Length(), sb.String())
	}
	if class, _ := svg.Attr("class"); class != "h-5 w-5" {
		t.Errorf("Expected class to be spread onto svg, got %q", class)
	}
	if viewBox, _ := svg.Attr("viewBox"); viewBox != "0 0 20 20" {
		t.Errorf("Expected viewBox '0 0 20 20', got %q", viewBox)
	}

	path := svg.Find("path")
	if fill, _ := path.Attr("fill"); fill != "currentColor" {
		t.Errorf("Expected path fill currentColor, got %q", fill)
	}
	if d, _ := path.Attr("d"); d != spinnerPath {
		t.Errorf("Expected spinner path data, got %q", d)
	}
}

func TestSpinner_NoAttributes(t *testing.T) {
	var sb strings.Builder
	if err := Spinner().Render(&sb); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(sb.String(), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20">`) {
		t.Errorf("Unexpected markup: %s", sb.String())
	}
}
