package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Belphemur/ProjectMovies/internal/models"
)

// SampleTVShow returns the reference show used across page tests: released, rated,
// with one creator and enough votes for reviews.
func SampleTVShow() models.TVShow {
	return models.TVShow{
		ID:               1399,
		Name:             "Sample Show",
		Tagline:          "Winter is coming.",
		Overview:         "Seven noble families fight for control of the mythical land of Westeros.",
		BackdropPath:     "/b.jpg",
		PosterPath:       "/p.jpg",
		Genres:           []models.Genre{{ID: 1, Name: "Drama"}},
		FirstAirDate:     "2020-01-01",
		LastAirDate:      "2023-01-01",
		NumberOfEpisodes: 73,
		NumberOfSeasons:  8,
		VoteAverage:      8.3,
		VoteCount:        5000,
		CreatedBy:        []models.Creator{{ID: 1, Name: "A"}},
		Seasons:          []models.Season{},
	}
}

// TVShowJSON renders show the way the media database sends it
func TVShowJSON(t *testing.T, show models.TVShow) string {
	t.Helper()
	data, err := json.Marshal(show)
	if err != nil {
		t.Fatalf("Failed to marshal show: %v", err)
	}
	return string(data)
}

// NotFoundJSON is the body the media database returns for unknown ids
const NotFoundJSON = `{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`

// NewTMDBServer starts a fake media database answering /3/tv/{id} from shows.
// Unknown ids get a 404 with NotFoundJSON. Every request is passed to onRequest when set.
func NewTMDBServer(t *testing.T, shows map[string]models.TVShow, onRequest func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if onRequest != nil {
			onRequest(r)
		}
		w.Header().Set("Content-Type", "application/json;charset=utf-8")

		id := strings.TrimPrefix(r.URL.Path, "/3/tv/")
		show, ok := shows[id]
		if !ok || !strings.HasPrefix(r.URL.Path, "/3/tv/") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(NotFoundJSON))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(TVShowJSON(t, show)))
	}))
	t.Cleanup(server.Close)
	return server
}

// ParseHTML loads rendered markup into a goquery document
func ParseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}
