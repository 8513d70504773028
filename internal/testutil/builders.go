package testutil

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/google/uuid"
)

// CycleBuilder provides fluent API for creating test cycles.
type CycleBuilder struct {
	cycle models.Cycle
}

func NewCycle() *CycleBuilder {
	return &CycleBuilder{
		cycle: models.Cycle{
			ID:            uuid.NewString(),
			Task:          "Test Task",
			MinutesAmount: 25,
			StartDate:     time.Now(),
		},
	}
}

func (b *CycleBuilder) WithID(id string) *CycleBuilder {
	b.cycle.ID = id
	return b
}

func (b *CycleBuilder) WithTask(task string) *CycleBuilder {
	b.cycle.Task = task
	return b
}

func (b *CycleBuilder) WithMinutes(m int) *CycleBuilder {
	b.cycle.MinutesAmount = m
	return b
}

func (b *CycleBuilder) StartedAt(t time.Time) *CycleBuilder {
	b.cycle.StartDate = t
	return b
}

func (b *CycleBuilder) Interrupted(at time.Time) *CycleBuilder {
	b.cycle.InterruptDate = &at
	b.cycle.Completed = false
	return b
}

func (b *CycleBuilder) Completed(at time.Time) *CycleBuilder {
	b.cycle.InterruptDate = &at
	b.cycle.Completed = true
	return b
}

func (b *CycleBuilder) Build() models.Cycle {
	return b.cycle
}
