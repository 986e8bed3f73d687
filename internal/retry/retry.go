package retry

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Config holds the configuration for retry logic
type Config struct {
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	BackoffMultiple float64
}

// DefaultConfig returns the backoff used by the HTTP adapters
func DefaultConfig() Config {
	return Config{
		MaxRetries:      2,
		BaseDelay:       250 * time.Millisecond,
		MaxDelay:        4 * time.Second,
		BackoffMultiple: 2.0,
	}
}

// Attempt is what one try of an operation reports back: the value, the HTTP status (0 if none)
// and the raw body so the checker can look inside error payloads.
type Attempt[T any] struct {
	Value      T
	StatusCode int
	Body       []byte
	Err        error
}

// ShouldRetry decides whether a failed attempt is worth another try
type ShouldRetry func(err error, statusCode int, body []byte) bool

// Printf is the logging hook; *logging.DefaultLogger satisfies it
type Printf func(format string, args ...any)

// Options configures retry behavior
type Options struct {
	Config      Config
	ShouldRetry ShouldRetry
	Logf        Printf
	Name        string
}

func (c Config) delay(attempt int) time.Duration {
	multiple := c.BackoffMultiple
	if multiple <= 0 {
		multiple = 1
	}
	d := time.Duration(float64(c.BaseDelay) * math.Pow(multiple, float64(attempt)))
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or the retry budget is spent.
// The last error is returned as-is; RetryExhaustedError only appears when the final attempt
// failed without an error value (a retryable status with a nil error).
func Do[T any](ctx context.Context, opts Options, fn func(attempt int) Attempt[T]) (T, error) {
	var zero T
	var last Attempt[T]
	total := opts.Config.MaxRetries + 1

	for attempt := 0; attempt < total; attempt++ {
		if attempt > 0 {
			wait := opts.Config.delay(attempt - 1)
			opts.logf("%s retry attempt %d/%d after %v", opts.Name, attempt+1, total, wait)

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(wait):
			}
		}

		last = fn(attempt)

		retryable := opts.ShouldRetry != nil && opts.ShouldRetry(last.Err, last.StatusCode, last.Body)
		if retryable && attempt < total-1 {
			if last.Err != nil {
				opts.logf("%s attempt %d/%d failed: %v", opts.Name, attempt+1, total, last.Err)
			} else {
				opts.logf("%s attempt %d/%d returned status %d", opts.Name, attempt+1, total, last.StatusCode)
			}
			continue
		}

		if last.Err != nil {
			return zero, last.Err
		}
		if retryable {
			break
		}
		if attempt > 0 {
			opts.logf("%s succeeded on attempt %d/%d", opts.Name, attempt+1, total)
		}
		return last.Value, nil
	}

	return zero, &RetryExhaustedError{
		Name:           opts.Name,
		MaxAttempts:    total,
		LastStatusCode: last.StatusCode,
		LastResponse:   last.Body,
	}
}

// RetryExhaustedError is returned when every attempt came back retryable without an error value
type RetryExhaustedError struct {
	Name           string
	MaxAttempts    int
	LastStatusCode int
	LastResponse   []byte
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("%s: %d attempts exhausted (last status %d)", e.Name, e.MaxAttempts, e.LastStatusCode)
}
