package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReportWithoutCycles(t *testing.T) {
	m, _ := setupTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	m, _ = update(t, m, cmd())
	if !m.statusIsError || m.statusMessage != "Nothing to report yet" {
		t.Fatalf("unexpected status %q", m.statusMessage)
	}
}

func TestReportExportsSession(t *testing.T) {
	m, _ := setupTestModel(t)
	m = startCycle(t, m, "Write spec")
	m = press(t, m, tea.KeyEsc)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	msg, ok := cmd().(ReportMsg)
	if !ok {
		t.Fatalf("expected ReportMsg")
	}
	if msg.Err != nil {
		t.Fatalf("export failed: %v", msg.Err)
	}
	if _, err := os.Stat(msg.Path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
	m, _ = update(t, m, msg)
	if m.statusIsError || !strings.Contains(m.statusMessage, msg.Path) {
		t.Fatalf("unexpected status %q", m.statusMessage)
	}
}
