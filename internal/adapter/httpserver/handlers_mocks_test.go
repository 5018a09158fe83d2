package httpserver

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/greetsum/internal/domain"
	"github.com/pscheid92/greetsum/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	greetingFn func(ctx context.Context) domain.Greeting
	addFn      func(ctx context.Context, a, b int64) domain.Sum
}

func (m *mockAppService) Greeting(ctx context.Context) domain.Greeting {
	if m.greetingFn != nil {
		return m.greetingFn(ctx)
	}
	return domain.Greeting{Message: domain.GreetingMessage}
}

func (m *mockAppService) Add(ctx context.Context, a, b int64) domain.Sum {
	if m.addFn != nil {
		return m.addFn(ctx, a, b)
	}
	return domain.Sum{A: a, B: b, Result: a + b}
}

// --- Test helpers ---

type testServerOptions struct {
	cfg          *config.Config
	clock        clockwork.Clock
	healthChecks []HealthCheck
}

func newTestServer(t *testing.T, app appService, opts ...func(*testServerOptions)) *Server {
	t.Helper()

	o := &testServerOptions{
		cfg:   &config.Config{AppEnv: "test", Port: 8080},
		clock: clockwork.NewFakeClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return NewServer(o.cfg, app, prometheus.NewRegistry(), o.clock, o.healthChecks...)
}

func withHealthChecks(checks ...HealthCheck) func(*testServerOptions) {
	return func(o *testServerOptions) {
		o.healthChecks = checks
	}
}

func withClock(clock clockwork.Clock) func(*testServerOptions) {
	return func(o *testServerOptions) {
		o.clock = clock
	}
}

func withCORSOrigins(origins ...string) func(*testServerOptions) {
	return func(o *testServerOptions) {
		o.cfg.CORSAllowedOrigins = origins
	}
}

// callHandler wraps a handler with error middleware, matching production behavior
func callHandler(handler echo.HandlerFunc, c echo.Context) error {
	return ErrorHandlingMiddleware()(handler)(c)
}
