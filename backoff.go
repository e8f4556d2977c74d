package wait

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff computes the delay slept before an attempt. Attempts are
// numbered from 1.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// BackoffFunc is an adapter that allows a function to be used as a
// Backoff.
type BackoffFunc func(attempt int) time.Duration

// Delay implements Backoff.
func (f BackoffFunc) Delay(attempt int) time.Duration {
	return f(attempt)
}

// Fixed returns a backoff that waits the same duration before every
// attempt.
func Fixed(d time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		return d
	})
}

// Exponential returns a backoff that doubles after every attempt:
// delay = base * 2^(attempt-1).
func Exponential(base time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		if attempt <= 0 {
			return base
		}
		// Prevent overflow for long uncapped runs.
		if attempt > 62 {
			return time.Duration(math.MaxInt64)
		}
		return base * time.Duration(1<<uint(attempt-1))
	})
}

// WithCap wraps a backoff and caps the delay at a maximum value.
func WithCap(max time.Duration, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		d := b.Delay(attempt)
		if d > max {
			return max
		}
		return d
	})
}

// WithJitter wraps a backoff and spreads the delay by a random factor
// between 0 and 1, where 0.2 means ±20%.
func WithJitter(factor float64, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		d := b.Delay(attempt)
		if factor <= 0 {
			return d
		}
		spread := float64(d) * factor
		jitter := (rand.Float64()*2 - 1) * spread
		result := time.Duration(float64(d) + jitter)
		if result < 0 {
			return 0
		}
		return result
	})
}
