package wait

import (
	"errors"
	"fmt"
)

// Configuration errors reported by New. They are never returned by a
// poll run.
var (
	// ErrNilAction is returned when New is given a nil action.
	ErrNilAction = errors.New("wait: action must not be nil")

	// ErrUnlimitedWaiter is returned when neither a timeout nor a max
	// attempt count is configured, which would poll forever.
	ErrUnlimitedWaiter = errors.New("wait: either a timeout or a max attempt count is required")

	// ErrUnusedMaxInterval is returned when a max interval is configured
	// without exponential backoff, leaving the ceiling with nothing to
	// cap.
	ErrUnusedMaxInterval = errors.New("wait: max interval requires exponential backoff")

	// ErrNegativeValue is returned when a duration or attempt count is
	// negative.
	ErrNegativeValue = errors.New("wait: durations and attempt counts must not be negative")
)

// TimeoutError is returned by a poll run that hit its timeout or attempt
// limit without the predicate ever being satisfied. Match it with
// errors.As.
type TimeoutError struct {
	// Attempts is the number of times the action was invoked, including
	// attempts whose error was ignored.
	Attempts int

	// LastResult is the most recent value the action produced. It is
	// meaningful only when HasResult is true; when every attempt ended
	// in an ignored error there is no result to report.
	LastResult any
	HasResult  bool
}

func (e *TimeoutError) Error() string {
	if e.HasResult {
		return fmt.Sprintf("wait: condition not met after %d attempts, last result: %v", e.Attempts, e.LastResult)
	}
	return fmt.Sprintf("wait: condition not met after %d attempts", e.Attempts)
}

// Abort wraps an action error so that it terminates the poll run even
// when the ignore set would otherwise swallow it. The waiter returns the
// unwrapped error.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	return &abortError{err: err}
}

// abortError marks an error that must propagate past the ignore set.
type abortError struct {
	err error
}

func (e *abortError) Error() string {
	return e.err.Error()
}

func (e *abortError) Unwrap() error {
	return e.err
}
