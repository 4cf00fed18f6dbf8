// Package ratelimit provides the rolling-window admission control used
// by crawl sessions. The limiter only delays, it never rejects.
package ratelimit

import (
	"context"
	"time"
)

const (
	// DefaultBudget admissions per DefaultWindow, matching the crawl
	// pacing expected by the upstream source.
	DefaultBudget = 20
	DefaultWindow = 60 * time.Second
)

// Limiter admits at most budget calls per window, suspending the
// caller for the remainder of the window once the budget is spent.
// One Limiter belongs to one crawl session; it is not safe for
// concurrent use and budgets are never shared across sessions.
type Limiter struct {
	budget int
	window time.Duration

	count       int
	windowStart time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(budget int, window time.Duration) *Limiter {
	if budget <= 0 {
		budget = DefaultBudget
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &Limiter{
		budget: budget,
		window: window,
		now:    time.Now,
		sleep:  sleepCtx,
	}
	l.windowStart = l.now()
	return l
}

// NewWithClock injects the time source and sleep function, for
// deterministic tests.
func NewWithClock(budget int, window time.Duration, now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) *Limiter {
	l := New(budget, window)
	if now != nil {
		l.now = now
		l.windowStart = now()
	}
	if sleep != nil {
		l.sleep = sleep
	}
	return l
}

// Admit returns once the call fits the current window, waiting out the
// remainder of the window first when the budget is exhausted. The wait
// is interruptible: a cancelled ctx returns ctx.Err() without admitting.
func (l *Limiter) Admit(ctx context.Context) error {
	now := l.now()
	elapsed := now.Sub(l.windowStart)

	if elapsed >= l.window {
		l.windowStart = now
		l.count = 0
		elapsed = 0
	}

	if l.count >= l.budget {
		if wait := l.window - elapsed; wait > 0 {
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
		}
		l.windowStart = l.now()
		l.count = 0
	}

	l.count++
	return nil
}

// Count reports admissions in the current window.
func (l *Limiter) Count() int {
	return l.count
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
