package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/greetsum/internal/adapter/metrics"
	apperrors "github.com/pscheid92/greetsum/internal/platform/errors"
)

type greetingResponse struct {
	Message string `json:"message"`
}

type sumResponse struct {
	A   int64 `json:"a"`
	B   int64 `json:"b"`
	Sum int64 `json:"sum"`
}

func (s *Server) registerAPIRoutes() {
	s.echo.GET("/api/greeting", s.handleGreeting)
	s.echo.GET("/api/add", s.handleAdd)
}

func (s *Server) handleGreeting(c echo.Context) error {
	greeting := s.app.Greeting(c.Request().Context())
	s.apiMetrics.Greetings.Inc()

	if err := c.JSON(http.StatusOK, greetingResponse{Message: greeting.Message}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleAdd(c echo.Context) error {
	var a, b int64
	err := echo.QueryParamsBinder(c).
		FailFast(true).
		MustInt64("a", &a).
		MustInt64("b", &b).
		BindError()
	if err != nil {
		s.apiMetrics.Additions.WithLabelValues(metrics.ResultInvalid).Inc()
		return queryParamError(err)
	}

	sum := s.app.Add(c.Request().Context(), a, b)
	s.apiMetrics.Additions.WithLabelValues(metrics.ResultOK).Inc()

	if err := c.JSON(http.StatusOK, sumResponse{A: sum.A, B: sum.B, Sum: sum.Result}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func queryParamError(err error) *apperrors.Error {
	var bindErr *echo.BindingError
	if !errors.As(err, &bindErr) {
		return apperrors.ValidationError("invalid query parameters")
	}

	if len(bindErr.Values) == 0 || bindErr.Values[0] == "" {
		return apperrors.ValidationError(fmt.Sprintf("query parameter %q is required", bindErr.Field)).
			WithField("param", bindErr.Field)
	}
	return apperrors.ValidationError(fmt.Sprintf("query parameter %q must be an integer", bindErr.Field)).
		WithField("param", bindErr.Field).
		WithField("value", bindErr.Values[0])
}
