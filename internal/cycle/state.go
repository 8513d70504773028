// Package cycle holds the cycle store and its transitions. Every
// transition takes a State by value and returns the next one; the
// Cycles slice of the input is never written to.
package cycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/google/uuid"
)

// State is the whole view state: the append-only cycle list, the id of
// the running cycle ("" when idle) and the seconds elapsed on it.
type State struct {
	Cycles         []models.Cycle
	ActiveID       string
	ElapsedSeconds int
}

func NewID() string {
	return uuid.NewString()
}

func (s State) Find(id string) (models.Cycle, bool) {
	for _, c := range s.Cycles {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cycle{}, false
}

// Active returns the running cycle, if any.
func (s State) Active() (models.Cycle, bool) {
	if s.ActiveID == "" {
		return models.Cycle{}, false
	}
	c, ok := s.Find(s.ActiveID)
	if !ok || c.InterruptDate != nil {
		return models.Cycle{}, false
	}
	return c, true
}

func (s State) IsRunning() bool {
	_, ok := s.Active()
	return ok
}

// History returns finished cycles, newest first.
func (s State) History() []models.Cycle {
	var out []models.Cycle
	for i := len(s.Cycles) - 1; i >= 0; i-- {
		if s.Cycles[i].InterruptDate != nil {
			out = append(out, s.Cycles[i])
		}
	}
	return out
}

// Create appends a new active cycle started at now. A cycle that is
// still running is stopped first.
func Create(s State, in Input, id string, now time.Time) (State, error) {
	if err := in.Validate(); err != nil {
		return s, err
	}
	if id == "" {
		id = NewID()
	}
	if _, exists := s.Find(id); exists {
		return s, fmt.Errorf("create cycle %s: %w", id, ErrDuplicateID)
	}

	next := StopActive(s, now)
	cycles := make([]models.Cycle, len(next.Cycles), len(next.Cycles)+1)
	copy(cycles, next.Cycles)
	next.Cycles = append(cycles, models.Cycle{
		ID:            id,
		Task:          strings.TrimSpace(in.Task),
		MinutesAmount: in.MinutesAmount,
		StartDate:     now,
	})
	next.ActiveID = id
	next.ElapsedSeconds = 0
	return next, nil
}

// StopActive stamps the running cycle with now and clears the active
// id. It is a no-op when nothing is running.
func StopActive(s State, now time.Time) State {
	return finish(s, now, false)
}

// ApplyTick records elapsed seconds for cycleID. Once elapsed reaches
// the cycle's total the cycle is finished exactly like a stop and
// elapsed is clamped to the total. Ticks for any other cycle are
// dropped.
func ApplyTick(s State, cycleID string, elapsed int, now time.Time) State {
	active, ok := s.Active()
	if !ok || active.ID != cycleID {
		return s
	}
	total := active.TotalSeconds()
	if elapsed >= total {
		next := finish(s, now, true)
		next.ElapsedSeconds = total
		return next
	}
	if elapsed < 0 {
		elapsed = 0
	}
	s.ElapsedSeconds = elapsed
	return s
}

func finish(s State, now time.Time, completed bool) State {
	if s.ActiveID == "" {
		return s
	}
	cycles := make([]models.Cycle, len(s.Cycles))
	copy(cycles, s.Cycles)
	for i := range cycles {
		if cycles[i].ID != s.ActiveID || cycles[i].InterruptDate != nil {
			continue
		}
		stamp := now
		cycles[i].InterruptDate = &stamp
		cycles[i].Completed = completed
	}
	s.Cycles = cycles
	s.ActiveID = ""
	return s
}
