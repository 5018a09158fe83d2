package app

import (
	"context"
	"log/slog"

	"github.com/pscheid92/greetsum/internal/domain"
)

var _ domain.Calculator = (*Service)(nil)

// Service implements domain.Calculator.
type Service struct{}

// NewService creates the application layer service.
func NewService() *Service {
	return &Service{}
}

// Greeting returns the fixed greeting.
func (s *Service) Greeting(_ context.Context) domain.Greeting {
	return domain.Greeting{Message: domain.GreetingMessage}
}

// Add returns a + b together with the operands.
func (s *Service) Add(ctx context.Context, a, b int64) domain.Sum {
	sum := domain.Sum{A: a, B: b, Result: a + b}
	slog.DebugContext(ctx, "Computed sum", "a", a, "b", b, "sum", sum.Result)
	return sum
}
