package wait_test

import (
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/bjaus/wait"
)

func TestFixed(t *testing.T) {
	b := wait.Fixed(100 * time.Millisecond)

	for attempt := 1; attempt <= 5; attempt++ {
		qt.Assert(t, qt.Equals(b.Delay(attempt), 100*time.Millisecond))
	}
}

func TestExponential(t *testing.T) {
	b := wait.Exponential(100 * time.Millisecond)

	cases := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 100 * time.Millisecond},  // 100 * 2^0
		{2, 200 * time.Millisecond},  // 100 * 2^1
		{3, 400 * time.Millisecond},  // 100 * 2^2
		{4, 800 * time.Millisecond},  // 100 * 2^3
		{5, 1600 * time.Millisecond}, // 100 * 2^4
	}

	for _, tc := range cases {
		qt.Assert(t, qt.Equals(b.Delay(tc.attempt), tc.expected))
	}
}

func TestExponential_overflow(t *testing.T) {
	b := wait.Exponential(100 * time.Millisecond)

	// Very high attempt should not overflow or panic.
	qt.Assert(t, qt.IsTrue(b.Delay(100) > 0))
}

func TestExponential_zeroAttempt(t *testing.T) {
	b := wait.Exponential(100 * time.Millisecond)

	// Zero and negative attempts fall back to the base delay.
	qt.Assert(t, qt.Equals(b.Delay(0), 100*time.Millisecond))
	qt.Assert(t, qt.Equals(b.Delay(-1), 100*time.Millisecond))
}

func TestWithCap(t *testing.T) {
	b := wait.WithCap(300*time.Millisecond, wait.Exponential(100*time.Millisecond))

	cases := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 300 * time.Millisecond}, // capped from 400
		{4, 300 * time.Millisecond}, // capped from 800
	}

	for _, tc := range cases {
		qt.Assert(t, qt.Equals(b.Delay(tc.attempt), tc.expected))
	}
}

func TestWithJitter(t *testing.T) {
	base := 100 * time.Millisecond
	b := wait.WithJitter(0.2, wait.Fixed(base))

	for i := 0; i < 100; i++ {
		d := b.Delay(1)
		qt.Assert(t, qt.IsTrue(d >= 80*time.Millisecond))
		qt.Assert(t, qt.IsTrue(d <= 120*time.Millisecond))
	}
}

func TestWithJitter_zeroFactor(t *testing.T) {
	b := wait.WithJitter(0, wait.Fixed(100*time.Millisecond))
	qt.Assert(t, qt.Equals(b.Delay(1), 100*time.Millisecond))
}

func TestBackoffFunc(t *testing.T) {
	b := wait.BackoffFunc(func(attempt int) time.Duration {
		return time.Duration(attempt*attempt) * time.Millisecond
	})

	qt.Assert(t, qt.Equals(b.Delay(3), 9*time.Millisecond))
}
