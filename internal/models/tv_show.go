package models

// TVShow is the TV detail payload returned by the media database for GET /3/tv/{id}.
// Absent or null fields decode to their zero values.
type TVShow struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Tagline          string    `json:"tagline"`
	Overview         string    `json:"overview"`
	BackdropPath     string    `json:"backdrop_path"`
	PosterPath       string    `json:"poster_path"`
	Genres           []Genre   `json:"genres"`
	FirstAirDate     string    `json:"first_air_date"` // YYYY-MM-DD
	LastAirDate      string    `json:"last_air_date"`  // YYYY-MM-DD
	NumberOfEpisodes int       `json:"number_of_episodes"`
	NumberOfSeasons  int       `json:"number_of_seasons"`
	VoteAverage      float64   `json:"vote_average"` // 0-10
	VoteCount        int       `json:"vote_count"`
	CreatedBy        []Creator `json:"created_by"`
	Seasons          []Season  `json:"seasons"`
}

// Genre is a genre tag attached to a show
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Creator is a person credited as creator of a show
type Creator struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
}

// Season summarizes one season of a show
type Season struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	PosterPath   string `json:"poster_path"`
}
