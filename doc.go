// Package wait provides a generic polling primitive: repeatedly invoke
// an action until a predicate over its result holds, an attempt limit is
// exhausted, or a wall-clock timeout elapses.
//
// wait is a waiting package that provides:
//
//   - Bounded Polling: Limit a poll run by timeout, attempt count, or both
//   - Composable Backoff: Fixed or exponential delays, with WithCap and WithJitter
//   - Injectable Clock: Control time in tests without real sleeps
//   - Error Filtering: Ignore chosen action errors, propagate the rest
//   - Rich Predicates: Truthy, equality, boolean identity, nil checks, or your own
//
// # Quick Start
//
// Using the package-level Until for one-off polls:
//
//	status, err := wait.Until(ctx, func(ctx context.Context) (string, error) {
//	    return client.Status(ctx)
//	},
//	    wait.EqualTo("ready"),
//	    wait.WithTimeout(30*time.Second),
//	)
//
// Creating a reusable Waiter bound to one action and policy:
//
//	w, err := wait.New(func(ctx context.Context) (int, error) {
//	    return queue.Depth(ctx)
//	},
//	    wait.WithTimeout(time.Minute),
//	    wait.WithInterval(500*time.Millisecond),
//	)
//	if err != nil {
//	    return err
//	}
//	depth, err := w.UntilEqualTo(ctx, 0)
//
// # Bounds
//
// Every Waiter needs at least one bound. WithTimeout limits the
// wall-clock duration of a run; WithMaxAttempts limits how many times
// the action is invoked; together, whichever trips first ends the run.
// Constructing a Waiter with neither fails with ErrUnlimitedWaiter —
// an unbounded poll loop is never acceptable.
//
// The loop never sleeps past the deadline: when the remaining budget is
// smaller than the computed delay, it sleeps only the remainder and
// performs a final attempt right at the boundary. The action's own
// execution time is not bounded, so a slow action can push a run
// slightly past the timeout.
//
// # Delays
//
// WithInterval sets a fixed delay before each attempt (100ms when
// unset). WithExponentialBackoff doubles the delay after every attempt,
// and WithMaxInterval caps that growth:
//
//	w, err := wait.New(action,
//	    wait.WithTimeout(time.Minute),
//	    wait.WithInterval(100*time.Millisecond),
//	    wait.WithExponentialBackoff(),
//	    wait.WithMaxInterval(5*time.Second),
//	)
//
// Advanced callers can replace the computation entirely with
// WithBackoff, composing the same strategies the interval options
// compile to:
//
//	wait.WithBackoff(wait.WithJitter(0.2, wait.WithCap(5*time.Second,
//	    wait.Exponential(100*time.Millisecond))))
//
// # Ignoring Action Errors
//
// While a resource is coming up, its probes often fail in expected ways.
// Ignore and IgnoreIf declare which action errors are swallowed; the
// attempt still counts toward the limit but produces no result:
//
//	w, err := wait.New(probe,
//	    wait.WithTimeout(time.Minute),
//	    wait.Ignore(io.EOF, fs.ErrNotExist),
//	)
//
// Any error outside the ignore set propagates immediately and aborts the
// run. Abort forces propagation even for an ignored error:
//
//	func probe(ctx context.Context) (string, error) {
//	    s, err := conn.Read(ctx)
//	    if errors.Is(err, io.EOF) && conn.Closed() {
//	        return "", wait.Abort(err) // EOF on a closed conn will never recover
//	    }
//	    return s, err
//	}
//
// # Failure Reporting
//
// A run that exhausts its bounds fails with *TimeoutError, carrying the
// attempt count and, when at least one attempt produced a value, the
// last result observed:
//
//	_, err := w.UntilTruthy(ctx)
//	var te *wait.TimeoutError
//	if errors.As(err, &te) {
//	    log.Printf("gave up after %d attempts (last: %v)", te.Attempts, te.LastResult)
//	}
//
// After a run, Attempts and Results expose the full trace of the run for
// diagnostics.
//
// # Testing
//
// Inject a fake clock to control time in tests:
//
//	type fakeClock struct {
//	    now    time.Time
//	    sleeps []time.Duration
//	}
//
//	func (c *fakeClock) Now() time.Time { return c.now }
//	func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
//	    c.sleeps = append(c.sleeps, d)
//	    c.now = c.now.Add(d)
//	    return ctx.Err()
//	}
//
// The recorded sleeps make delay schedules assertable without real
// waiting.
package wait
