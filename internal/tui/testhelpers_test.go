package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

var t0 = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

func setupTestModel(t *testing.T) (MainModel, fakeClock) {
	t.Helper()
	clk := clockwork.NewFakeClockAt(t0)
	settings := config.Defaults()
	settings.ReportDir = t.TempDir()
	m := NewMainModel(context.Background(), settings, timer.NewDriver(clk, time.Second))
	return m, clk
}

func update(t *testing.T, m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MainModel)
	if !ok {
		t.Fatalf("Update returned %T, want MainModel", next)
	}
	return mm, cmd
}

func press(t *testing.T, m MainModel, k tea.KeyType) MainModel {
	t.Helper()
	next, _ := update(t, m, tea.KeyMsg{Type: k})
	return next
}

func typeText(t *testing.T, m MainModel, s string) MainModel {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// startCycle fills the form and submits it.
func startCycle(t *testing.T, m MainModel, task string) MainModel {
	t.Helper()
	m = typeText(t, m, task)
	m = press(t, m, tea.KeyEnter)
	if !m.state.IsRunning() {
		t.Fatalf("expected a running cycle after submit, status=%q", m.statusMessage)
	}
	return m
}
