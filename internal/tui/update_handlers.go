package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{Key: "enter", Handler: handleSubmit, Description: "Start", Modes: []Mode{ModeIdle}, Priority: 50})
	r.Register(KeyBinding{Key: "down", Handler: handleFocusMinutes, Description: "Minutes", Modes: []Mode{ModeIdle}})
	r.Register(KeyBinding{Key: "up", Handler: handleFocusTask, Description: "Task", Modes: []Mode{ModeIdle}})
	r.Register(KeyBinding{Key: "s", Handler: handleStop, Describe: describeStop, Modes: []Mode{ModeRunning}, Priority: 50})
	r.Register(KeyBinding{Key: "esc", Handler: handleStop, Describe: describeStop, Modes: []Mode{ModeRunning}, Priority: 50})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Modes: []Mode{ModeRunning}})
	r.Register(KeyBinding{Key: "ctrl+r", Handler: handleReportKey, Description: "Report"})
	r.Register(KeyBinding{Key: "ctrl+t", Handler: handleThemeKey, Description: "Theme"})
	return r
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	if m.mode() == ModeRunning {
		return m, nil
	}
	m.statusMessage = ""
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) MainModel {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m
}

func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	if m.run == nil || msg.CycleID != m.run.CycleID {
		return m, nil
	}
	m.state = cycle.ApplyTick(m.state, msg.CycleID, msg.Elapsed, msg.At)
	if m.state.IsRunning() {
		return m, waitForTick(m.run)
	}
	m.logTransition("cycle completed")
	m = m.stopTimer()
	m = m.setStatus("Cycle finished")
	cmd := m.form.Enable()
	return m, cmd
}

func (m MainModel) handleReport(msg ReportMsg) MainModel {
	if msg.Err != nil {
		if errors.Is(msg.Err, report.ErrNoCycles) {
			return m.setStatusError("Nothing to report yet")
		}
		util.LogError("export report", msg.Err)
		return m.setStatusError(fmt.Sprintf("Error generating PDF: %v", msg.Err))
	}
	slog.Info("report exported", "path", msg.Path)
	return m.setStatus("PDF report generated: " + msg.Path)
}

// Submit starts a cycle from the form. It does nothing while the start
// control is disabled.
func (m MainModel) Submit() (MainModel, tea.Cmd) {
	if m.form.SubmitDisabled() {
		return m, nil
	}
	in, err := m.form.Input()
	if err != nil {
		return m.setStatusError(err.Error()), nil
	}
	next, err := cycle.Create(m.state, in, cycle.NewID(), m.driver.Clock().Now())
	if err != nil {
		return m.setStatusError(err.Error()), nil
	}
	m.state = next
	m.statusMessage = ""
	m.form.Reset()
	m.form.Disable()
	m.logTransition("cycle created")
	return m.startTimer()
}

// Stop interrupts the active cycle, if any.
func (m MainModel) Stop() (MainModel, tea.Cmd) {
	if !m.state.IsRunning() {
		return m, nil
	}
	m.state = cycle.StopActive(m.state, m.driver.Clock().Now())
	m.logTransition("cycle stopped")
	m = m.stopTimer()
	m = m.setStatus("Cycle interrupted")
	cmd := m.form.Enable()
	return m, cmd
}

func handleSubmit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.Submit()
	return next, cmd, true
}

func handleStop(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.Stop()
	return next, cmd, true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m = m.stopTimer()
	return m, tea.Quit, true
}

// describeStop shows what is left of the active cycle next to the key.
func describeStop(m MainModel) string {
	return "Stop (" + m.Display() + " left)"
}

// handleFocusMinutes leaves the key to the task field while it has more
// than one suggestion to cycle through.
func handleFocusMinutes(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.form.CyclingSuggestions() {
		return m, nil, false
	}
	cmd := m.form.FocusField(fieldMinutes)
	return m, cmd, true
}

func handleFocusTask(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.form.CyclingSuggestions() {
		return m, nil, false
	}
	cmd := m.form.FocusField(fieldTask)
	return m, cmd, true
}

func handleReportKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, exportReportCmd(m.state.Cycles, m.settings.ReportDir, m.driver.Clock().Now()), true
}

func handleThemeKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m = m.applyTheme(NextThemeName(m.themeName))
	return m.setStatus("Theme: " + m.theme.Name), nil, true
}
