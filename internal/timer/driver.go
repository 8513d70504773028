// Package timer drives the one-second countdown tick. Elapsed time is
// always measured as the wall-clock delta from the cycle's start, so a
// late or dropped tick never skews the countdown.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/jonboulle/clockwork"
)

// Tick is one observation of a running cycle.
type Tick struct {
	CycleID string
	Elapsed int // whole seconds since the cycle started
	Done    bool
	At      time.Time
}

type Driver struct {
	clock    clockwork.Clock
	interval time.Duration
}

// NewDriver returns a driver ticking every interval on clock. A nil
// clock means the real one; a non-positive interval means
// config.TickInterval.
func NewDriver(clock clockwork.Clock, interval time.Duration) *Driver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = config.TickInterval
	}
	return &Driver{clock: clock, interval: interval}
}

func (d *Driver) Clock() clockwork.Clock {
	return d.clock
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Start schedules ticks for one cycle. The run ends when total has
// elapsed, when Stop is called, or when ctx is cancelled.
func (d *Driver) Start(ctx context.Context, cycleID string, startDate time.Time, total time.Duration) *Run {
	runCtx, cancel := context.WithCancel(ctx)
	return &Run{
		CycleID:   cycleID,
		clock:     d.clock,
		startDate: startDate,
		total:     total,
		ticker:    d.clock.NewTicker(d.interval),
		ctx:       runCtx,
		cancel:    cancel,
	}
}

// Run is a scheduled countdown for a single cycle.
type Run struct {
	CycleID string

	clock     clockwork.Clock
	startDate time.Time
	total     time.Duration
	ticker    clockwork.Ticker
	ctx       context.Context
	cancel    context.CancelFunc
	stopOnce  sync.Once
}

// Next blocks until the next tick. It returns false once the run has
// been stopped or cancelled. The tick that reaches the total is
// flagged Done and stops the run.
func (r *Run) Next() (Tick, bool) {
	if r.ctx.Err() != nil {
		r.Stop()
		return Tick{}, false
	}
	select {
	case <-r.ctx.Done():
		r.Stop()
		return Tick{}, false
	case <-r.ticker.Chan():
	}

	now := r.clock.Now()
	t := Tick{CycleID: r.CycleID, Elapsed: Elapsed(r.startDate, now), At: now}
	if time.Duration(t.Elapsed)*time.Second >= r.total {
		t.Done = true
		r.Stop()
	}
	return t, true
}

// Loop calls fn for every tick until the run ends.
func (r *Run) Loop(fn func(Tick)) {
	for {
		t, ok := r.Next()
		if !ok {
			return
		}
		fn(t)
		if t.Done {
			return
		}
	}
}

// Stop is safe to call more than once and from any goroutine.
func (r *Run) Stop() {
	r.stopOnce.Do(func() {
		r.ticker.Stop()
		r.cancel()
	})
}

func (r *Run) Done() <-chan struct{} {
	return r.ctx.Done()
}

// Elapsed is the number of whole seconds from start to now, never
// negative.
func Elapsed(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
