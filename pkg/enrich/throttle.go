package enrich

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval keeps anonymous GitHub API use near 100 requests/minute.
const DefaultInterval = 600 * time.Millisecond

// Throttle paces outgoing requests.
type Throttle interface {
	// Wait blocks until the next request may start or ctx is done.
	Wait(ctx context.Context) error
}

// IntervalThrottle spaces requests at least Interval apart. It is a token
// bucket holding a single token, so the first request starts immediately.
type IntervalThrottle struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewIntervalThrottle returns a throttle with the given spacing. A zero or
// negative interval never blocks.
func NewIntervalThrottle(interval time.Duration) *IntervalThrottle {
	if interval < 0 {
		interval = 0
	}
	return &IntervalThrottle{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until a token is available.
func (t *IntervalThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Interval returns the configured spacing.
func (t *IntervalThrottle) Interval() time.Duration {
	return t.interval
}
