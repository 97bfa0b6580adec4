package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/models"
)

// Client defines the interface for querying the media database (TMDB)
type Client interface {
	// GetTVShow issues a single read of /3/tv/{id}. A non-200 upstream status is not an
	// error: it is reported through the envelope's StatusCode with a nil payload.
	// Transport and decode failures are returned as *apperrors.ErrUpstream.
	GetTVShow(ctx context.Context, id string) (*models.Result[models.TVShow], error)

	// Close releases idle connections held by the client.
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	userAgent  string
}

// NewClient creates a new client instance from cfg. The API key is captured here and
// never read from the environment afterwards.
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	// No timeout unless one is configured: a page view waits for the upstream answer.
	var timeout time.Duration
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, running without timeout")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	baseURL := strings.TrimRight(cfg.TMDB.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultTMDBBaseURL
	}

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(baseTransport),
		},
		baseURL:   baseURL,
		apiKey:    cfg.TMDB.APIKey,
		language:  config.NormalizeLanguage(cfg.TMDB.Language),
		userAgent: userAgent,
	}
}

// Close releases idle connections held by the client.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// endpoint builds {base}/3/{segments...}?api_key=...&language=... with each segment path-escaped.
func (c *client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	return c.baseURL + "/3/" + strings.Join(escaped, "/") + "?" + query.Encode()
}

// redactURL hides the api_key query value so endpoints can be logged and reported.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
