package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/greetsum/internal/platform/version"
)

const drainCheckName = "server"

var errDraining = errors.New("server is shutting down")

// HealthCheck is an additional named check run by the startup and readiness
// probes after the drain check.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type probeStatus struct {
	Status      string `json:"status"`
	FailedCheck string `json:"failed_check,omitempty"`
	Error       string `json:"error,omitempty"`
}

type livenessStatus struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

func (s *Server) registerHealthRoutes() {
	s.echo.GET("/health/startup", s.probe(2*time.Second))
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.probe(5*time.Second))
	s.echo.GET("/version", s.handleVersion)
}

// probe reports ready until shutdown begins or an extra check fails within timeout.
func (s *Server) probe(timeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		code, body := http.StatusOK, probeStatus{Status: "ready"}
		if name, err := s.firstFailingCheck(ctx); err != nil {
			code = http.StatusServiceUnavailable
			body = probeStatus{Status: "unhealthy", FailedCheck: name, Error: err.Error()}
		}

		if err := c.JSON(code, body); err != nil {
			return fmt.Errorf("failed to write probe response: %w", err)
		}
		return nil
	}
}

func (s *Server) firstFailingCheck(ctx context.Context) (string, error) {
	if s.draining.Load() {
		return drainCheckName, errDraining
	}
	for _, hc := range s.healthChecks {
		if err := hc.Check(ctx); err != nil {
			return hc.Name, err
		}
	}
	return "", nil
}

func (s *Server) handleLiveness(c echo.Context) error {
	body := livenessStatus{Status: "ok", Uptime: s.clock.Since(s.startTime).Seconds()}
	if err := c.JSON(http.StatusOK, body); err != nil {
		return fmt.Errorf("failed to write liveness response: %w", err)
	}
	return nil
}

func (s *Server) handleVersion(c echo.Context) error {
	if err := c.JSON(http.StatusOK, version.Get()); err != nil {
		return fmt.Errorf("failed to write version response: %w", err)
	}
	return nil
}
