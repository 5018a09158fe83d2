package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/greetsum/internal/adapter/metrics"
	"github.com/pscheid92/greetsum/internal/domain"
	"github.com/pscheid92/greetsum/internal/platform/config"
)

const readHeaderTimeout = 10 * time.Second

type appService interface {
	Greeting(ctx context.Context) domain.Greeting
	Add(ctx context.Context, a, b int64) domain.Sum
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app appService

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics
	apiMetrics  *metrics.APIMetrics

	clock        clockwork.Clock
	startTime    time.Time
	healthChecks []HealthCheck
	draining     atomic.Bool
}

// NewServer builds the echo server and registers all routes. Extra health
// checks run after the built-in drain check on the readiness and startup probes.
func NewServer(cfg *config.Config, app appService, reg *prometheus.Registry, clock clockwork.Clock, healthChecks ...HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	srv := &Server{
		echo:        e,
		config:      cfg,
		app:         app,
		registry:    reg,
		httpMetrics: metrics.NewHTTPMetrics(reg),
		apiMetrics:  metrics.NewAPIMetrics(reg),
		clock:       clock,
		startTime:   clock.Now(),

		healthChecks: healthChecks,
	}

	e.HTTPErrorHandler = srv.handleHTTPError
	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(fmt.Sprintf(":%d", s.config.Port)); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown fails readiness probes first, then drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.draining.Store(true)
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// ServeHTTP lets the server be driven directly by httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
