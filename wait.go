package wait

import (
	"context"
	"errors"
	"time"
)

// Action produces one attempt's value. It is invoked fresh on every
// attempt and may fail; whether a failure aborts the poll run depends on
// the waiter's ignore set. Bind any arguments the underlying operation
// needs by closing over them.
type Action[T any] func(ctx context.Context) (T, error)

// Waiter repeatedly invokes an action until a predicate over its result
// holds, a maximum attempt count is exhausted, or a wall-clock timeout
// elapses, whichever comes first.
//
// A Waiter is bound to one action and one timing policy at construction.
// Each Until* call is an independent poll run: the transient counters
// reported by Attempts and Results are reset when the run starts and are
// readable afterward for diagnostics. A single Waiter instance must not
// run concurrent polls; construct one Waiter per goroutine instead.
type Waiter[T any] struct {
	action      Action[T]
	timeout     time.Duration
	maxAttempts int
	backoff     Backoff
	ignore      Condition
	clock       Clock

	calls   int
	results []T
}

// New creates a Waiter around action with the given options.
//
// At least one bound on the poll loop is required: a construction
// without WithTimeout and without WithMaxAttempts would wait forever and
// fails with ErrUnlimitedWaiter. WithMaxInterval without
// WithExponentialBackoff fails with ErrUnusedMaxInterval, and negative
// durations or attempt counts fail with ErrNegativeValue. Validation
// happens here, never during polling.
func New[T any](action Action[T], opts ...Option) (*Waiter[T], error) {
	if action == nil {
		return nil, ErrNilAction
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Waiter[T]{
		action:      action,
		timeout:     cfg.timeout,
		maxAttempts: cfg.maxAttempts,
		backoff:     cfg.compileBackoff(),
		ignore:      cfg.ignore,
		clock:       cfg.clock,
	}, nil
}

// Until runs one poll until pred holds for an attempt's result. A nil
// pred defaults to Truthy.
func (w *Waiter[T]) Until(ctx context.Context, pred Predicate[T]) (T, error) {
	return w.poll(ctx, pred)
}

// Until constructs a one-shot Waiter and runs a single poll with it.
// It is the package-level shorthand for callers that do not need to
// reuse a policy or inspect the waiter afterward.
func Until[T any](ctx context.Context, action Action[T], pred Predicate[T], opts ...Option) (T, error) {
	w, err := New(action, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return w.poll(ctx, pred)
}

// Attempts reports how many times the action was invoked during the
// most recent poll run, counting attempts whose error was ignored.
func (w *Waiter[T]) Attempts() int {
	return w.calls
}

// Results returns a copy of every value the action produced during the
// most recent poll run, in order, including values that failed the
// predicate. Attempts that ended in an ignored error contribute nothing.
func (w *Waiter[T]) Results() []T {
	out := make([]T, len(w.results))
	copy(out, w.results)
	return out
}

func (w *Waiter[T]) poll(ctx context.Context, pred Predicate[T]) (T, error) {
	var zero T
	if pred == nil {
		pred = Truthy[T]()
	}

	w.calls = 0
	w.results = nil

	// endTime is meaningful only when a timeout is set; with timeout 0
	// the remaining budget is treated as unbounded.
	endTime := w.clock.Now().Add(w.timeout)

	var last T
	var hasLast bool

	for {
		remaining := endTime.Sub(w.clock.Now())
		if w.timeout != 0 && remaining < 0 {
			break
		}
		if w.maxAttempts != 0 && w.calls >= w.maxAttempts {
			break
		}

		delay := w.backoff.Delay(w.calls + 1)
		// Never sleep past the deadline: the last attempt happens right
		// at the boundary instead of being skipped.
		if w.timeout != 0 && delay > remaining {
			delay = remaining
		}
		if err := w.clock.Sleep(ctx, delay); err != nil {
			return zero, err
		}
		w.calls++

		result, err := w.action(ctx)
		if err != nil {
			var aborted *abortError
			if errors.As(err, &aborted) {
				return zero, aborted.Unwrap()
			}
			if w.ignore != nil && w.ignore(err) {
				continue
			}
			return zero, err
		}

		w.results = append(w.results, result)
		last, hasLast = result, true
		if pred(result) {
			return result, nil
		}
	}

	terr := &TimeoutError{Attempts: w.calls}
	if hasLast {
		terr.LastResult = last
		terr.HasResult = true
	}
	return zero, terr
}
