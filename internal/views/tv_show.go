package views

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/Belphemur/ProjectMovies/internal/display"
	"github.com/Belphemur/ProjectMovies/internal/models"
)

const headerGradient = "linear-gradient(to right, rgba(24, 26, 27, 0.84), rgba(0,0,0, 0.8))"

// TVShowPage renders the TV detail page for a fetch result. Any status other than
// 200 renders NotFoundPage without touching the payload. now is the reference time
// for release checks.
func TVShowPage(result *models.Result[models.TVShow], now time.Time, opts Options) g.Node {
	if result == nil || result.StatusCode != http.StatusOK || result.Payload == nil {
		return NotFoundPage(opts)
	}
	show := result.Payload
	released := display.IsReleased(show.FirstAirDate, now)

	return document(opts, show.Name+" - "+opts.siteName(), show.Overview,
		tvHeader(show, opts),
		html.Div(
			html.Class("m-3"),
			g.If(released, voteMetrics(show)),
			airInfo(show, released),
			html.Br(),
			g.If(show.Overview != "", overview(show.Overview)),
			html.Br(),
			tvWidgets(show, opts.Widgets),
		),
	)
}

// HeaderBackground builds the header's background-image declaration. Without a
// backdrop only the gradient is used.
func HeaderBackground(imageBase, backdropPath string) string {
	if backdropPath == "" {
		return "background-image: " + headerGradient
	}
	return "background-image: " + headerGradient + `, url("` + cssString(ImageURL(imageBase, SizeOriginal, backdropPath)) + `")`
}

var cssStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `)

// cssString escapes s for use inside a double-quoted CSS string.
func cssString(s string) string {
	return cssStringEscaper.Replace(s)
}

func tvHeader(show *models.TVShow, opts Options) g.Node {
	return html.Header(
		html.ID("show-header"),
		html.Style(HeaderBackground(opts.imageBaseURL(), show.BackdropPath)),
		Navbar(opts.siteName()),
		html.Div(
			html.Class("flex flex-col justify-center items-center p-5"),
			html.Img(
				html.ID("poster"),
				html.Src(PosterURL(opts.imageBaseURL(), SizePoster, show.PosterPath)),
				html.Alt(show.Name+" Poster"),
				html.Width("250"),
				html.Height("375"),
				html.Class("rounded-md w-[250px] h-[375px]"),
			),
			html.Div(
				html.Div(
					html.Class("flex flex-col grow mt-5"),
					html.H1(html.ID("show-name"), html.Class("font-bold text-3xl self-center text-neutral-100"), g.Text(show.Name)),
					html.P(html.ID("show-tagline"), html.Class("text-sm self-center text-neutral-300"), g.Text(show.Tagline)),
				),
				html.Div(
					html.ID("genres"),
					html.Class("flex flex-row mt-5 gap-3 flex-wrap justify-center"),
					g.Map(show.Genres, func(genre models.Genre) g.Node {
						return html.Div(
							html.Data("genre-id", strconv.Itoa(genre.ID)),
							html.Class("genre text-base text-neutral-300 font-medium bg-red-600 p-2 rounded-md"),
							g.Text(genre.Name),
						)
					}),
				),
			),
		),
	)
}

func voteMetrics(show *models.TVShow) g.Node {
	percentage := display.Percentage(show.VoteAverage)

	return html.Div(
		html.ID("metrics"),
		html.Class("mb-5"),
		html.Div(
			html.Class("h-4 w-full bg-neutral-900 rounded-sm flex items-center"),
			html.Span(
				html.ID("vote-bar"),
				html.Class("inline-block relative bg-red-600 h-2 ml-1 mr-2"),
				html.Style("width: "+percentage+"%"),
			),
		),
		html.Div(
			html.Class("flex flex-row justify-between ml-1 mt-2 mr-1"),
			html.P(html.ID("vote-percentage"), html.Class("font-bold text-2xl text-red-600"), g.Text(percentage+"%")),
			html.P(
				html.ID("vote-count"),
				html.Class("flex flex-row gap-1 items-center font-medium text-xl text-red-600"),
				html.Span(html.Class("font-semibold text-2xl"), g.Text(strconv.Itoa(show.VoteCount))),
				g.Text(" Reviews"),
			),
		),
	)
}

func airInfo(show *models.TVShow, released bool) g.Node {
	var dates g.Node
	if released {
		dates = g.Group{
			html.P(html.ID("first-aired"), html.Class("font-medium text-lg"), g.Text("First aired "+display.LongDate(show.FirstAirDate))),
			html.P(html.ID("last-aired"), html.Class("font-medium text-lg"), g.Text("Last aired on "+display.LongDate(show.LastAirDate))),
		}
	} else {
		dates = html.P(html.ID("will-air"), html.Class("font-medium text-lg"), g.Text("Will air on "+display.LongDate(show.FirstAirDate)))
	}

	return html.Div(
		html.ID("air-info"),
		html.Class("border-red-600 border-2 p-2 rounded-md"),
		dates,
		html.Div(
			html.ID("episodes"),
			html.P(html.Class("font-medium text-lg inline text-red-600"), g.Text(strconv.Itoa(show.NumberOfEpisodes))),
			html.P(html.Class("font-medium text-lg inline"), g.Text(" Episodes")),
		),
	)
}

func overview(text string) g.Node {
	return html.Div(
		html.ID("overview"),
		html.P(html.Class("font-semibold text-2xl text-neutral-100 mb-3"), g.Text("Overview")),
		html.P(html.Class("text-neutral-300"), g.Text(text)),
	)
}

func tvWidgets(show *models.TVShow, widgets Widgets) g.Node {
	if widgets == nil {
		return nil
	}
	return g.Group{
		widgets.Seasons(seasonsProps(show)),
		widgets.Cast(CastProps{ID: show.ID, MediaType: MediaTypeTV}),
		g.Iff(len(show.CreatedBy) >= 1, func() g.Node {
			return widgets.Creators(creatorsProps(show))
		}),
		g.Iff(show.VoteCount > 1, func() g.Node {
			return widgets.Reviews(ReviewsProps{TVID: show.ID})
		}),
	}
}
