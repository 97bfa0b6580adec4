package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Belphemur/ProjectMovies/internal/config"
	"github.com/Belphemur/ProjectMovies/internal/metrics"
	"github.com/Belphemur/ProjectMovies/internal/views"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// requestID reuses a caller-supplied id or generates one, and echoes it back.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := config.GetLogger()
		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logger.Error()
		case status >= http.StatusBadRequest:
			event = logger.Warn()
		}
		event.
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// recovery turns a panic into the error page, the same way handled faults are.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		s.fail(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}

// fail logs and reports err, then renders the error page with a 500.
func (s *Server) fail(c *gin.Context, err error) {
	logger := config.GetLogger()
	logger.Error().
		Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg("Failed to serve page")

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", c.GetString(requestIDKey))
		scope.SetRequest(c.Request)
		sentry.CaptureException(err)
	})

	_ = c.Error(err)
	s.render(c, http.StatusInternalServerError, metrics.ViewError, views.ErrorPage(s.opts))
}
