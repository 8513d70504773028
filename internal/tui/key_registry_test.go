package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{Key: "x", Priority: 1, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		calls = append(calls, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "x", Priority: 5, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		calls = append(calls, "high")
		return m, nil, false
	}})

	m, _ := setupTestModel(t)
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
}

func TestHandlerRegistryModes(t *testing.T) {
	b := KeyBinding{Key: "s", Modes: []Mode{ModeRunning}}
	if b.AppliesTo(ModeIdle) {
		t.Fatalf("binding should not apply when idle")
	}
	if !b.AppliesTo(ModeRunning) {
		t.Fatalf("binding should apply while running")
	}
	if !(KeyBinding{Key: "ctrl+c"}).AppliesTo(ModeIdle) {
		t.Fatalf("binding without modes applies everywhere")
	}
}

func TestHandlerRegistrySkipsOtherModes(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "s", Modes: []Mode{ModeRunning}, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		t.Fatalf("running binding fired while idle")
		return m, nil, true
	}})
	if len(r.BindingsFor(ModeIdle)) != 0 || len(r.BindingsFor(ModeRunning)) != 1 {
		t.Fatalf("unexpected per-mode bindings")
	}

	m, _ := setupTestModel(t)
	if _, _, handled := r.Handle(m, "s"); handled {
		t.Fatalf("expected idle key press to be unhandled")
	}
}

func TestDefaultHelp(t *testing.T) {
	m, _ := setupTestModel(t)
	idle := m.keys.Help(m)
	if !strings.Contains(idle, "[enter]Start") || strings.Contains(idle, "Stop") {
		t.Fatalf("unexpected idle help %q", idle)
	}

	m = startCycle(t, m, "Write")
	running := m.keys.Help(m)
	if !strings.Contains(running, "[s]Stop (25:00 left)") || strings.Contains(running, "[enter]Start") {
		t.Fatalf("unexpected running help %q", running)
	}
	if strings.Count(running, "Stop") != 1 {
		t.Fatalf("expected Stop listed once, got %q", running)
	}

	m, _ = update(t, m, TickMsg{CycleID: m.run.CycleID, Elapsed: 65, At: t0.Add(65 * time.Second)})
	if got := m.keys.Help(m); !strings.Contains(got, "[s]Stop (23:55 left)") {
		t.Fatalf("help should follow the countdown, got %q", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeIdle.String() != "idle" || ModeRunning.String() != "running" {
		t.Fatalf("unexpected mode names %q %q", ModeIdle, ModeRunning)
	}
}
