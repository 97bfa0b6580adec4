// Package server exposes the site's pages over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/Belphemur/ProjectMovies/assets"
	"github.com/Belphemur/ProjectMovies/internal/client"
	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/metrics"
	"github.com/Belphemur/ProjectMovies/internal/views"
)

const shutdownTimeout = 10 * time.Second

// Server renders pages from media database reads.
type Server struct {
	client client.Client
	cfg    *config.Config
	opts   views.Options
	now    func() time.Time
	engine *gin.Engine
}

// New creates a Server and registers routes. now supplies the reference time for
// release checks; nil means time.Now.
func New(c client.Client, cfg *config.Config, widgets views.Widgets, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		client: c,
		cfg:    cfg,
		opts: views.Options{
			SiteName:     cfg.SiteName,
			ImageBaseURL: cfg.TMDB.ImageBaseURL,
			Language:     cfg.TMDB.Language,
			Widgets:      widgets,
		},
		now:    now,
		engine: gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.Use(requestID(), requestLogger(), requestMetrics(), s.recovery())

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET(views.PlaceholderPath, s.handlePlaceholder)
	s.engine.GET("/tv/:id", s.handleTVShow)
	s.engine.NoRoute(s.handleNotFound)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logger := config.GetLogger()
	httpServer := &http.Server{
		Addr:              net.JoinHostPort(s.cfg.Server.Address, strconv.Itoa(s.cfg.Server.Port)),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}()

	logger.Info().Str("address", httpServer.Addr).Msg("Starting HTTP server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePlaceholder(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", assets.PlaceholderSVG)
}

func (s *Server) handleTVShow(c *gin.Context) {
	result, err := s.client.GetTVShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	status, view := http.StatusOK, metrics.ViewShow
	if result.StatusCode != http.StatusOK {
		status, view = http.StatusNotFound, metrics.ViewNotFound
	}
	s.render(c, status, view, views.TVShowPage(result, s.now(), s.opts))
}

func (s *Server) handleNotFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, metrics.ViewNotFound, views.NotFoundPage(s.opts))
}

func (s *Server) render(c *gin.Context, status int, view string, node g.Node) {
	metrics.PageRendersTotal.WithLabelValues(view).Inc()
	c.Render(status, nodeRender{node: node})
}
