package wait

import (
	"errors"
	"time"
)

// Condition reports whether an action error belongs to the ignore set.
type Condition func(error) bool

// DefaultInterval is the base delay between attempts when WithInterval
// is not given.
const DefaultInterval = 100 * time.Millisecond

// config holds all waiter configuration.
type config struct {
	timeout     time.Duration
	maxAttempts int
	interval    time.Duration
	exponential bool
	maxInterval time.Duration
	backoff     Backoff
	ignore      Condition
	clock       Clock
}

func defaultConfig() config {
	return config{
		interval: DefaultInterval,
		clock:    realClock{},
	}
}

func (c *config) validate() error {
	if c.timeout < 0 || c.interval < 0 || c.maxInterval < 0 || c.maxAttempts < 0 {
		return ErrNegativeValue
	}
	if c.timeout == 0 && c.maxAttempts == 0 {
		return ErrUnlimitedWaiter
	}
	if c.maxInterval != 0 && !c.exponential {
		return ErrUnusedMaxInterval
	}
	return nil
}

// compileBackoff turns the interval configuration into a delay strategy.
// An explicit WithBackoff wins over interval-based settings.
func (c *config) compileBackoff() Backoff {
	if c.backoff != nil {
		return c.backoff
	}
	if !c.exponential {
		return Fixed(c.interval)
	}
	b := Exponential(c.interval)
	if c.maxInterval > 0 {
		b = WithCap(c.maxInterval, b)
	}
	return b
}

// Option configures a Waiter.
type Option func(*config)

// WithTimeout sets the maximum wall-clock time for a poll run.
// Zero (the default) means no time limit; some other bound must then be
// set with WithMaxAttempts.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithMaxAttempts sets the maximum number of action invocations per poll
// run. Zero (the default) means no attempt limit; some other bound must
// then be set with WithTimeout.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithInterval sets the base delay slept before each attempt.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithExponentialBackoff doubles the delay after every attempt, starting
// from the configured interval. Combine with WithMaxInterval to cap the
// growth.
func WithExponentialBackoff() Option {
	return func(c *config) {
		c.exponential = true
	}
}

// WithMaxInterval caps the exponential delay. Valid only together with
// WithExponentialBackoff; a ceiling with no growth to cap is rejected at
// construction.
func WithMaxInterval(d time.Duration) Option {
	return func(c *config) {
		c.maxInterval = d
	}
}

// WithBackoff replaces the interval-based delay computation with a
// custom strategy.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// Ignore adds the given errors to the ignore set, matched with
// errors.Is. An attempt whose action error is ignored still counts
// toward the attempt limit but produces no result and does not end the
// poll run.
func Ignore(targets ...error) Option {
	return IgnoreIf(func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	})
}

// IgnoreIf adds an arbitrary matcher to the ignore set. Multiple Ignore
// and IgnoreIf options accumulate; an error matched by any of them is
// ignored.
func IgnoreIf(cond Condition) Option {
	return func(c *config) {
		if prev := c.ignore; prev != nil {
			c.ignore = func(err error) bool {
				return prev(err) || cond(err)
			}
		} else {
			c.ignore = cond
		}
	}
}
