// Package runner runs a single cycle without the TUI, printing the
// countdown line by line.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
)

type Runner struct {
	Driver *timer.Driver
	Out    io.Writer
	NewID  func() string
}

func New(driver *timer.Driver, out io.Writer) *Runner {
	return &Runner{Driver: driver, Out: out, NewID: cycle.NewID}
}

// Run starts a cycle for in and blocks until it completes or ctx is
// cancelled, in which case the cycle is stopped. The final state is
// returned in both cases.
func (r *Runner) Run(ctx context.Context, in cycle.Input) (cycle.State, error) {
	clock := r.Driver.Clock()
	state, err := cycle.Create(cycle.State{}, in, r.NewID(), clock.Now())
	if err != nil {
		return state, err
	}
	active, _ := state.Active()
	slog.Debug("cycle started", "id", active.ID, "task", active.Task, "minutes", active.MinutesAmount)
	r.printf("%s %s\n", active.Task, cycle.Countdown(state))

	run := r.Driver.Start(ctx, active.ID, active.StartDate, active.Duration())
	defer run.Stop()
	run.Loop(func(t timer.Tick) {
		state = cycle.ApplyTick(state, t.CycleID, t.Elapsed, t.At)
		r.printf("%s %s\n", active.Task, cycle.Countdown(state))
	})

	if state.IsRunning() {
		state = cycle.StopActive(state, clock.Now())
		slog.Debug("cycle stopped", "id", active.ID, "elapsed", state.ElapsedSeconds)
		r.printf("stopped after %s\n", elapsedLabel(state.ElapsedSeconds))
		return state, nil
	}
	slog.Debug("cycle completed", "id", active.ID)
	r.printf("%s done\n", active.Task)
	return state, nil
}

func (r *Runner) printf(format string, args ...any) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func elapsedLabel(seconds int) string {
	return models.Countdown{Minutes: seconds / 60, Seconds: seconds % 60}.String()
}
