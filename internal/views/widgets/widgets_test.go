package widgets

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/Belphemur/ProjectMovies/internal/testutil"
	"github.com/Belphemur/ProjectMovies/internal/views"
)

const imageBase = "https://image.tmdb.org/t/p"

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return sb.String()
}

func TestDefault_Seasons(t *testing.T) {
	w := New(imageBase)
	out := render(t, w.Seasons(views.SeasonsProps{
		TVID: 1399,
		Seasons: []views.SeasonSummary{
			{Name: "Specials", SeasonNumber: 0, EpisodeCount: 12},
			{Name: "Season 1", SeasonNumber: 1, EpisodeCount: 10, AirDate: "2011-04-17", PosterPath: "/s1.jpg"},
		},
	}))
	doc := testutil.ParseHTML(t, out)

	if tvID, _ := doc.Find("section#seasons").Attr("data-tv-id"); tvID != "1399" {
		t.Errorf("Expected data-tv-id 1399, got %q", tvID)
	}

	seasons := doc.Find("li.season")
	if seasons.Length() != 2 {
		t.Fatalf("Expected 2 seasons, got %d", seasons.Length())
	}

	specials := seasons.Eq(0)
	if src, _ := specials.Find("img").Attr("src"); src != views.PlaceholderPath {
		t.Errorf("Expected placeholder poster for season without artwork, got %q", src)
	}

	first := seasons.Eq(1)
	if src, _ := first.Find("img").Attr("src"); src != imageBase+"/w185/s1.jpg" {
		t.Errorf("Expected season poster URL, got %q", src)
	}
	if !strings.Contains(first.Text(), "10 Episodes") {
		t.Errorf("Expected episode count, got %q", first.Text())
	}
	if !strings.Contains(first.Text(), "April 17, 2011") {
		t.Errorf("Expected long air date, got %q", first.Text())
	}
}

func TestDefault_Seasons_Empty(t *testing.T) {
	out := render(t, New(imageBase).Seasons(views.SeasonsProps{TVID: 1}))
	doc := testutil.ParseHTML(t, out)

	if doc.Find("section#seasons").Length() != 1 {
		t.Error("Expected the seasons section to render even without seasons")
	}
	if doc.Find("li.season").Length() != 0 {
		t.Errorf("Expected no season cards, got %d", doc.Find("li.season").Length())
	}
}

func TestDefault_Cast(t *testing.T) {
	out := render(t, New(imageBase).Cast(views.CastProps{ID: 1399, MediaType: views.MediaTypeTV}))
	doc := testutil.ParseHTML(t, out)

	href, _ := doc.Find("section#cast a").Attr("href")
	if href != "https://www.themoviedb.org/tv/1399/cast" {
		t.Errorf("Expected cast link, got %q", href)
	}
}

func TestDefault_Creators(t *testing.T) {
	out := render(t, New(imageBase).Creators(views.CreatorsProps{
		Creators: []views.CreatorSummary{
			{ID: 9813, Name: "David Benioff", ProfilePath: "/db.jpg"},
			{ID: 228068, Name: "D. B. Weiss"},
		},
	}))
	doc := testutil.ParseHTML(t, out)

	creators := doc.Find("section#creators li.creator")
	if creators.Length() != 2 {
		t.Fatalf("Expected 2 creators, got %d", creators.Length())
	}
	if src, _ := creators.Eq(0).Find("img").Attr("src"); src != imageBase+"/w185/db.jpg" {
		t.Errorf("Expected profile image URL, got %q", src)
	}
	if creators.Eq(1).Find("img").Length() != 0 {
		t.Error("Expected no profile image when the path is empty")
	}
	if got := strings.TrimSpace(creators.Eq(1).Text()); got != "D. B. Weiss" {
		t.Errorf("Expected creator name, got %q", got)
	}
}

func TestDefault_Reviews(t *testing.T) {
	out := render(t, New(imageBase).Reviews(views.ReviewsProps{TVID: 1399}))
	doc := testutil.ParseHTML(t, out)

	href, _ := doc.Find("section#reviews a").Attr("href")
	if href != "https://www.themoviedb.org/tv/1399/reviews" {
		t.Errorf("Expected reviews link, got %q", href)
	}
}
