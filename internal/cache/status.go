package cache

import "context"

// Request-scoped hit/miss tracking, surfaced as the X-Cache-Status response
// header. Carried explicitly through the context instead of any ambient
// per-thread state.

type statusKey struct{}

type Status struct {
	value string
}

const (
	StatusHit  = "HIT"
	StatusMiss = "MISS"
)

// WithStatus attaches a fresh status holder to ctx.
func WithStatus(ctx context.Context) (context.Context, *Status) {
	s := &Status{}
	return context.WithValue(ctx, statusKey{}, s), s
}

func MarkHit(ctx context.Context)  { mark(ctx, StatusHit) }
func MarkMiss(ctx context.Context) { mark(ctx, StatusMiss) }

func mark(ctx context.Context, v string) {
	if s, ok := ctx.Value(statusKey{}).(*Status); ok {
		s.value = v
	}
}

// Value returns "" when no cached lookup ran during the request.
func (s *Status) Value() string {
	if s == nil {
		return ""
	}
	return s.value
}
