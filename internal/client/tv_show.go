package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Belphemur/ProjectMovies/internal/apperrors"
	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/metrics"
	"github.com/Belphemur/ProjectMovies/internal/models"
)

// GetTVShow fetches the TV detail payload for id
func (c *client) GetTVShow(ctx context.Context, id string) (*models.Result[models.TVShow], error) {
	return getJSON[models.TVShow](ctx, c, apperrors.NewTVShowNotFoundError(id), "tv", id)
}

// getJSON performs one GET against the media database and wraps the outcome in a result envelope.
// notFound describes the resource and is logged when the status is not 200.
func getJSON[T any](ctx context.Context, c *client, notFound *apperrors.ErrNotFound, segments ...string) (*models.Result[T], error) {
	logger := config.GetLogger()
	resource, id := notFound.Resource, notFound.ID

	endpoint := c.endpoint(segments...)
	safeURL := redactURL(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("build request", safeURL, redactTransportError(err, safeURL))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("resource", resource).Interface("id", id).Str("url", safeURL).Msg("Fetching from media database")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TMDBRequestsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.NewUpstreamError("fetch", safeURL, redactTransportError(err, safeURL))
	}
	defer resp.Body.Close()

	metrics.TMDBRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		event := logger.Info().
			Err(notFound).
			Int("statusCode", resp.StatusCode).
			Str("url", safeURL)

		// The error body is informational only; an unreadable one is not a fault.
		var status models.APIStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err == nil {
			event = event.Int("apiStatusCode", status.StatusCode).Str("apiStatusMessage", status.StatusMessage)
		}
		event.Msg("Media database returned non-OK status")

		return &models.Result[T]{StatusCode: resp.StatusCode}, nil
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewUpstreamError("decode", safeURL, err)
	}

	logger.Debug().Str("resource", resource).Interface("id", id).Msg("Fetched from media database")

	return &models.Result[T]{Payload: &payload, StatusCode: resp.StatusCode}, nil
}

// redactTransportError swaps the request URL carried by a *url.Error for safeURL so
// the key never reaches logs or error reports.
func redactTransportError(err error, safeURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = safeURL
	}
	return err
}
