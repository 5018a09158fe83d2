package domain

import "context"

// Sum holds both operands and their result. Invariant: Result == A + B
// under int64 arithmetic; overflow wraps.
type Sum struct {
	A      int64
	B      int64
	Result int64
}

// Calculator serves the two API operations.
type Calculator interface {
	Greeting(ctx context.Context) Greeting
	Add(ctx context.Context, a, b int64) Sum
}
