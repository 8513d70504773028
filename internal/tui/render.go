package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderForm(),
		"",
		m.renderCountdown(),
		m.progress.ViewAs(cycle.Progress(m.state)),
		"",
		m.renderControl(),
	}
	if history := m.renderHistory(); history != "" {
		sections = append(sections, "", history)
	}
	sections = append(sections, "", m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Display is the remaining time as MM:SS.
func (m MainModel) Display() string {
	return cycle.Countdown(m.state).String()
}

func (m MainModel) renderHeader() string {
	title := m.theme.Header.Render(strings.ToUpper(config.AppName))
	version := m.theme.Dim.Render("v" + versionLabel())
	line := title + " " + version
	if active, ok := m.state.Active(); ok {
		label := fmt.Sprintf("Working on %s for %d minutes", active.Task, active.MinutesAmount)
		line += "  " + m.theme.Highlight.Render(m.truncate(label, 20))
	}
	return line
}

func (m MainModel) renderForm() string {
	taskStyle, minutesStyle := m.theme.Input, m.theme.Input
	if !m.form.Disabled() {
		if m.form.focus == fieldTask {
			taskStyle = m.theme.InputFocused
		} else {
			minutesStyle = m.theme.InputFocused
		}
	}
	label := m.theme.Label
	if m.form.Disabled() {
		label = m.theme.Dim
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render("I will work on "),
		taskStyle.Render(m.form.task.View()),
		label.Render(" for "),
		minutesStyle.Render(m.form.minutes.View()),
		label.Render(" minutes."),
	)
}

// renderCountdown draws the four digits and the separator, each in its
// own box.
func (m MainModel) renderCountdown() string {
	digits := cycle.Countdown(m.state).Digits()
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Digit.Render(digits[0:1]),
		" ",
		m.theme.Digit.Render(digits[1:2]),
		m.theme.Separator.Render(":"),
		m.theme.Digit.Render(digits[2:3]),
		" ",
		m.theme.Digit.Render(digits[3:4]),
	)
}

func (m MainModel) renderControl() string {
	switch {
	case m.state.IsRunning():
		return m.theme.Stop.Render("■ Stop")
	case m.form.SubmitDisabled():
		return m.theme.StartDisabled.Render("▶ Start")
	default:
		return m.theme.Start.Render("▶ Start")
	}
}

func (m MainModel) renderHistory() string {
	history := m.state.History()
	if len(history) == 0 {
		return ""
	}
	lines := []string{m.theme.Dim.Render("History")}
	for i, c := range history {
		if i >= config.MaxHistoryShown {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("  +%d more", len(history)-i)))
			break
		}
		marker, style := "✗", m.theme.Interrupted
		if c.Completed {
			marker, style = "✓", m.theme.Completed
		}
		text := fmt.Sprintf("%s  %dm  %s-%s  %s", c.Task, c.MinutesAmount,
			FormatClock(c.StartDate), FormatClock(*c.InterruptDate),
			FormatDuration(c.InterruptDate.Sub(c.StartDate)))
		lines = append(lines, "  "+style.Render(marker)+" "+m.truncate(text, 6))
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderFooter() string {
	if m.statusMessage != "" {
		style := m.theme.Status
		if m.statusIsError {
			style = m.theme.Error
		}
		return style.Render(m.truncate(m.statusMessage, 4))
	}
	return m.theme.Dim.Render(m.keys.Help(m))
}

// truncate fits s into the window width minus reserved columns.
func (m MainModel) truncate(s string, reserved int) string {
	if m.width <= 0 {
		return s
	}
	limit := m.width - reserved
	if limit < config.MinProgressWidth {
		limit = config.MinProgressWidth
	}
	return ansi.Truncate(s, limit, config.TruncationSuffix)
}
