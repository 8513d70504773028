package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg timer.Tick

type ReportMsg struct {
	Path string
	Err  error
}

// waitForTick blocks on the run inside the command goroutine; the
// state change itself happens in Update.
func waitForTick(run *timer.Run) tea.Cmd {
	if run == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := run.Next()
		if !ok {
			return nil
		}
		return TickMsg(t)
	}
}

func exportReportCmd(cycles []models.Cycle, dir string, now time.Time) tea.Cmd {
	snapshot := append([]models.Cycle(nil), cycles...)
	return func() tea.Msg {
		path, err := report.WritePDF(snapshot, dir, now)
		return ReportMsg{Path: path, Err: err}
	}
}
