package views

import (
	g "maragu.dev/gomponents"

	"github.com/Belphemur/ProjectMovies/internal/models"
)

// Widgets renders the collaborating sections of a detail page. Each method receives
// only the slice of the payload it needs.
type Widgets interface {
	Seasons(props SeasonsProps) g.Node
	Cast(props CastProps) g.Node
	Creators(props CreatorsProps) g.Node
	Reviews(props ReviewsProps) g.Node
}

// SeasonSummary is the part of a season the seasons widget shows
type SeasonSummary struct {
	Name         string
	SeasonNumber int
	EpisodeCount int
	AirDate      string
	PosterPath   string
}

// CreatorSummary is the part of a creator the creators widget shows
type CreatorSummary struct {
	ID          int
	Name        string
	ProfilePath string
}

// SeasonsProps feeds the seasons widget
type SeasonsProps struct {
	TVID    int
	Seasons []SeasonSummary
}

// CastProps identifies the title whose cast is shown
type CastProps struct {
	ID        int
	MediaType string
}

// CreatorsProps lists the people credited with creating a show
type CreatorsProps struct {
	Creators []CreatorSummary
}

// ReviewsProps identifies the show whose reviews are linked
type ReviewsProps struct {
	TVID int
}

// MediaTypeTV is the media type passed to widgets rendered on TV pages
const MediaTypeTV = "tv"

func seasonsProps(show *models.TVShow) SeasonsProps {
	seasons := make([]SeasonSummary, 0, len(show.Seasons))
	for _, s := range show.Seasons {
		seasons = append(seasons, SeasonSummary{
			Name:         s.Name,
			SeasonNumber: s.SeasonNumber,
			EpisodeCount: s.EpisodeCount,
			AirDate:      s.AirDate,
			PosterPath:   s.PosterPath,
		})
	}
	return SeasonsProps{TVID: show.ID, Seasons: seasons}
}

func creatorsProps(show *models.TVShow) CreatorsProps {
	creators := make([]CreatorSummary, 0, len(show.CreatedBy))
	for _, c := range show.CreatedBy {
		creators = append(creators, CreatorSummary{ID: c.ID, Name: c.Name, ProfilePath: c.ProfilePath})
	}
	return CreatorsProps{Creators: creators}
}
