// Package widgets provides the default detail-page widgets.
package widgets

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Belphemur/ProjectMovies/internal/display"
	"github.com/Belphemur/ProjectMovies/internal/views"
)

// TMDBSiteURL is the public media database site that cast and review sections link to
const TMDBSiteURL = "https://www.themoviedb.org"

// Default renders widgets from their props alone; it never fetches.
type Default struct {
	ImageBaseURL string
}

var _ views.Widgets = (*Default)(nil)

// New returns the default widget set using imageBaseURL for artwork.
func New(imageBaseURL string) *Default {
	return &Default{ImageBaseURL: imageBaseURL}
}

func section(id, title string, children ...g.Node) g.Node {
	return html.Section(
		html.ID(id),
		html.Class("mt-4"),
		html.H2(html.Class("font-semibold text-2xl text-neutral-100 mb-3"), g.Text(title)),
		g.Group(children),
	)
}

// Seasons renders one card per season.
func (d *Default) Seasons(props views.SeasonsProps) g.Node {
	return section("seasons", "Seasons",
		html.Data("tv-id", strconv.Itoa(props.TVID)),
		html.Ul(
			html.Class("flex flex-row gap-3 overflow-x-auto"),
			g.Map(props.Seasons, func(s views.SeasonSummary) g.Node {
				return html.Li(
					html.Class("season flex flex-col w-[150px] shrink-0"),
					html.Data("season-number", strconv.Itoa(s.SeasonNumber)),
					html.Img(
						html.Src(views.PosterURL(d.ImageBaseURL, views.SizeThumb, s.PosterPath)),
						html.Alt(s.Name+" Poster"),
						html.Width("150"),
						html.Height("225"),
						html.Loading("lazy"),
						html.Class("rounded-md"),
					),
					html.P(html.Class("font-medium text-neutral-100"), g.Text(s.Name)),
					html.P(html.Class("text-sm text-neutral-300"), g.Text(fmt.Sprintf("%d Episodes", s.EpisodeCount))),
					g.If(s.AirDate != "", html.P(html.Class("text-sm text-neutral-400"), g.Text(display.LongDate(s.AirDate)))),
				)
			}),
		),
	)
}

// Cast links to the full cast page on the media database site.
func (d *Default) Cast(props views.CastProps) g.Node {
	return section("cast", "Cast",
		html.Data("media-type", props.MediaType),
		html.A(
			html.Href(fmt.Sprintf("%s/%s/%d/cast", TMDBSiteURL, props.MediaType, props.ID)),
			html.Class("text-red-600 underline"),
			html.Rel("noopener"),
			g.Text("View full cast & crew"),
		),
	)
}

// Creators lists creators with their profile picture when one exists.
func (d *Default) Creators(props views.CreatorsProps) g.Node {
	return section("creators", "Created by",
		html.Ul(
			html.Class("flex flex-row gap-3 flex-wrap"),
			g.Map(props.Creators, func(c views.CreatorSummary) g.Node {
				return html.Li(
					html.Class("creator flex flex-row gap-2 items-center"),
					html.Data("person-id", strconv.Itoa(c.ID)),
					g.If(c.ProfilePath != "", html.Img(
						html.Src(views.ImageURL(d.ImageBaseURL, views.SizeThumb, c.ProfilePath)),
						html.Alt(c.Name),
						html.Width("45"),
						html.Height("45"),
						html.Class("rounded-full object-cover w-[45px] h-[45px]"),
					)),
					html.Span(html.Class("font-medium text-neutral-100"), g.Text(c.Name)),
				)
			}),
		),
	)
}

// Reviews links to the show's reviews on the media database site.
func (d *Default) Reviews(props views.ReviewsProps) g.Node {
	return section("reviews", "Reviews",
		html.A(
			html.Href(fmt.Sprintf("%s/tv/%d/reviews", TMDBSiteURL, props.TVID)),
			html.Class("text-red-600 underline"),
			html.Rel("noopener"),
			g.Text("Read reviews"),
		),
	)
}
