// Package loop runs a simulation step at a fixed interval, independent of
// any renderer.
package loop

import (
	"context"
	"time"
)

// Ticker delivers ticks until stopped. *time.Ticker satisfies it through
// NewTimeTicker; tests supply their own.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every interval.
type TickerFactory func(interval time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

// StepFunc advances the simulation by one tick. Returning false stops the loop.
type StepFunc func(tick uint64) bool

// Loop calls a step function at a fixed rate.
type Loop struct {
	interval  time.Duration
	newTicker TickerFactory
	ticks     uint64
}

// New creates a loop running rate steps per second.
// A non-positive rate falls back to 60.
func New(rate int) *Loop {
	if rate <= 0 {
		rate = 60
	}
	return &Loop{
		interval:  time.Second / time.Duration(rate),
		newTicker: NewTimeTicker,
	}
}

// WithTicker replaces the ticker source and returns the loop.
func (l *Loop) WithTicker(f TickerFactory) *Loop {
	l.newTicker = f
	return l
}

// Interval returns the time between steps.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Ticks returns how many steps have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Run calls step once per tick until ctx is done or step returns false.
// A missed tick is not replayed; the next step simply runs on the next tick.
// The ticker is always stopped before Run returns.
func (l *Loop) Run(ctx context.Context, step StepFunc) error {
	t := l.newTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C():
			l.ticks++
			if !step(l.ticks) {
				return nil
			}
		}
	}
}

// Drive runs up to n steps back to back without waiting and returns how many
// ran. It stops early when step returns false.
func (l *Loop) Drive(n int, step StepFunc) int {
	ran := 0
	for ran < n {
		l.ticks++
		ran++
		if !step(l.ticks) {
			break
		}
	}
	return ran
}
