package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/walletlogs/payment-relay/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts beyond the first
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // cap on the backoff delay
	Multiplier float64       // exponential backoff multiplier
	Jitter     bool          // randomize delays to avoid thundering herd
}

// DefaultConfig returns a retry configuration suited to short best-effort
// operations like event publishes.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier executes functions with exponential backoff between attempts
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	return &Retrier{config: config}
}

// Execute runs fn until it succeeds, the attempts are exhausted, or the
// context is cancelled. The last error is returned on failure.
func (r *Retrier) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		logger.Debug("Retrying after failure",
			logger.Err(lastErr),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay = delay/2 + rand.Float64()*delay/2
	}
	return time.Duration(delay)
}
