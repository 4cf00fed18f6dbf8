package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(budget int, window time.Duration) (*Limiter, *fakeClock, *[]time.Duration) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	slept := &[]time.Duration{}
	l := NewWithClock(budget, window, clock.Now, func(ctx context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		clock.Advance(d)
		return nil
	})
	return l, clock, slept
}

func TestAdmit_WithinBudgetNeverSleeps(t *testing.T) {
	l, _, slept := newTestLimiter(20, 60*time.Second)

	for i := 0; i < 20; i++ {
		if err := l.Admit(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if len(*slept) != 0 {
		t.Fatalf("expected no sleeps, got %v", *slept)
	}
	if l.Count() != 20 {
		t.Fatalf("count = %d, want 20", l.Count())
	}
}

func TestAdmit_BlocksForWindowRemainder(t *testing.T) {
	l, clock, slept := newTestLimiter(20, 60*time.Second)

	for i := 0; i < 20; i++ {
		if err := l.Admit(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	clock.Advance(15 * time.Second)
	if err := l.Admit(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(*slept) != 1 {
		t.Fatalf("expected exactly one sleep, got %v", *slept)
	}
	if (*slept)[0] != 45*time.Second {
		t.Fatalf("slept %v, want 45s", (*slept)[0])
	}
	// Counter restarted for the new window; the admitted call is in it.
	if l.Count() != 1 {
		t.Fatalf("count = %d, want 1", l.Count())
	}
}

func TestAdmit_ExpiredWindowResetsWithoutWait(t *testing.T) {
	l, clock, slept := newTestLimiter(20, 60*time.Second)

	for i := 0; i < 20; i++ {
		if err := l.Admit(context.Background()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}

	clock.Advance(61 * time.Second)
	if err := l.Admit(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(*slept) != 0 {
		t.Fatalf("expected no sleep after expired window, got %v", *slept)
	}
	if l.Count() != 1 {
		t.Fatalf("count = %d, want 1", l.Count())
	}
}

func TestAdmit_CancelledDuringWait(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	sentinel := errors.New("cancelled")
	l := NewWithClock(1, 60*time.Second, clock.Now, func(ctx context.Context, d time.Duration) error {
		return sentinel
	})

	if err := l.Admit(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.Admit(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel err, got %v", err)
	}
}

func TestAdmit_RealSleepHonorsContext(t *testing.T) {
	l := New(1, time.Hour)
	if err := l.Admit(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Admit(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
