package timer

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func TestElapsed(t *testing.T) {
	assert.Equal(t, 0, Elapsed(t0, t0))
	assert.Equal(t, 0, Elapsed(t0, t0.Add(999*time.Millisecond)))
	assert.Equal(t, 1, Elapsed(t0, t0.Add(time.Second)))
	assert.Equal(t, 90, Elapsed(t0, t0.Add(90500*time.Millisecond)))
	assert.Equal(t, 0, Elapsed(t0, t0.Add(-time.Minute)))
}

func TestNewDriverDefaults(t *testing.T) {
	d := NewDriver(nil, 0)
	assert.Equal(t, config.TickInterval, d.Interval())
	assert.NotNil(t, d.Clock())
}

func TestRunTicksFromWallClock(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	d := NewDriver(clk, time.Second)
	r := d.Start(context.Background(), "c1", t0, 5*time.Minute)
	defer r.Stop()

	clk.Advance(time.Second)
	tick, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, Tick{CycleID: "c1", Elapsed: 1, At: t0.Add(time.Second)}, tick)

	// A stalled consumer sees the full delta on its next tick.
	clk.Advance(10 * time.Second)
	tick, ok = r.Next()
	require.True(t, ok)
	assert.Equal(t, 11, tick.Elapsed)
	assert.False(t, tick.Done)
}

func TestRunStartedInThePast(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	d := NewDriver(clk, time.Second)
	r := d.Start(context.Background(), "c1", t0.Add(-2*time.Minute), 5*time.Minute)
	defer r.Stop()

	clk.Advance(time.Second)
	tick, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 121, tick.Elapsed)
}

func TestRunFinishesAtTotal(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	d := NewDriver(clk, time.Second)
	r := d.Start(context.Background(), "c1", t0, 2*time.Second)

	clk.Advance(time.Second)
	tick, ok := r.Next()
	require.True(t, ok)
	assert.False(t, tick.Done)

	clk.Advance(time.Second)
	tick, ok = r.Next()
	require.True(t, ok)
	assert.True(t, tick.Done)
	assert.Equal(t, 2, tick.Elapsed)

	_, ok = r.Next()
	assert.False(t, ok)
	select {
	case <-r.Done():
	default:
		t.Fatal("expected run to be done")
	}
}

func TestRunStop(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	r := NewDriver(clk, time.Second).Start(context.Background(), "c1", t0, time.Minute)

	r.Stop()
	r.Stop()

	clk.Advance(time.Second)
	_, ok := r.Next()
	assert.False(t, ok)
}

func TestRunStopUnblocksNext(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	r := NewDriver(clk, time.Second).Start(context.Background(), "c1", t0, time.Minute)

	result := make(chan bool, 1)
	go func() {
		_, ok := r.Next()
		result <- ok
	}()
	r.Stop()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Next did not return after Stop")
	}
}

func TestRunParentCancel(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	ctx, cancel := context.WithCancel(context.Background())
	r := NewDriver(clk, time.Second).Start(ctx, "c1", t0, time.Minute)

	cancel()
	_, ok := r.Next()
	assert.False(t, ok)
}

func TestRunLoop(t *testing.T) {
	clk := clockwork.NewFakeClockAt(t0)
	r := NewDriver(clk, time.Second).Start(context.Background(), "c1", t0, 3*time.Second)

	clk.Advance(3 * time.Second)
	var got []Tick
	r.Loop(func(tk Tick) { got = append(got, tk) })

	require.Len(t, got, 1)
	assert.True(t, got[0].Done)
	assert.Equal(t, 3, got[0].Elapsed)
}
