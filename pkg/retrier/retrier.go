// Package retrier implements exponential backoff with jitter for transient
// venue errors.
package retrier

import (
	"context"
	"math/rand"
	"time"
)

const (
	defaultBaseInterval = 500 * time.Millisecond
	defaultMaxInterval  = 10 * time.Second
	defaultMultiplier   = 2.0
	defaultMaxRetries   = 3
	defaultJitter       = 0.2
)

// Retrier retries a function with exponential backoff and jitter.
type Retrier struct {
	baseInterval time.Duration
	maxInterval  time.Duration
	multiplier   float64
	maxRetries   int
	jitter       float64
}

// Option configures the Retrier.
type Option func(*Retrier)

// WithBaseInterval sets the first retry interval.
func WithBaseInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.baseInterval = d
	}
}

// WithMaxInterval caps the retry interval.
func WithMaxInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.maxInterval = d
	}
}

// WithMaxRetries sets the maximum number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(r *Retrier) {
		r.maxRetries = n
	}
}

// WithJitter sets the jitter factor (0.0 to 1.0).
func WithJitter(j float64) Option {
	return func(r *Retrier) {
		r.jitter = j
	}
}

// New creates a Retrier with defaults suitable for market data polling.
func New(opts ...Option) *Retrier {
	r := &Retrier{
		baseInterval: defaultBaseInterval,
		maxInterval:  defaultMaxInterval,
		multiplier:   defaultMultiplier,
		maxRetries:   defaultMaxRetries,
		jitter:       defaultJitter,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Do executes fn, retrying on error until the retry budget is spent or ctx is
// cancelled. The last error is returned.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	interval := r.baseInterval

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.withJitter(interval)):
			}

			interval = time.Duration(float64(interval) * r.multiplier)
			if interval > r.maxInterval {
				interval = r.maxInterval
			}
		}

		if err = fn(ctx); err == nil {
			return nil
		}
	}

	return err
}

func (r *Retrier) withJitter(interval time.Duration) time.Duration {
	jitter := (rand.Float64()*2 - 1) * r.jitter * float64(interval)
	sleep := time.Duration(float64(interval) + jitter)
	if sleep < 0 {
		sleep = 0
	}
	return sleep
}

// DoWithData executes fn with retries and returns its value.
func DoWithData[T any](r *Retrier, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := r.Do(ctx, func(ctx context.Context) error {
		var e error
		result, e = fn(ctx)
		return e
	})
	return result, err
}
