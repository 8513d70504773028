package tui

import (
	"strconv"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldTask formField = iota
	fieldMinutes
)

// FormModel binds the task name and duration fields. While disabled it
// ignores all input.
type FormModel struct {
	task           textinput.Model
	minutes        textinput.Model
	focus          formField
	disabled       bool
	defaultMinutes int
}

func NewFormModel(suggestions []string, defaultMinutes int) FormModel {
	task := textinput.New()
	task.Placeholder = "Name your project"
	task.CharLimit = config.MaxTaskLength
	task.Width = config.InputWidth
	task.ShowSuggestions = true
	task.SetSuggestions(suggestions)
	task.Focus()

	minutes := textinput.New()
	minutes.Placeholder = "00"
	minutes.CharLimit = 2
	minutes.Width = 3
	minutes.SetValue(strconv.Itoa(defaultMinutes))
	minutes.CursorEnd()

	return FormModel{
		task:           task,
		minutes:        minutes,
		focus:          fieldTask,
		defaultMinutes: defaultMinutes,
	}
}

func (f FormModel) Task() string    { return f.task.Value() }
func (f FormModel) Minutes() string { return f.minutes.Value() }
func (f FormModel) Disabled() bool  { return f.disabled }

// CyclingSuggestions reports whether the focused task field has several
// matching suggestions, in which case up and down step through them.
func (f FormModel) CyclingSuggestions() bool {
	if f.disabled || f.focus != fieldTask {
		return false
	}
	return len(f.task.MatchedSuggestions()) > 1
}

// SubmitDisabled reports whether the start control is disabled.
func (f FormModel) SubmitDisabled() bool {
	return f.disabled || cycle.SubmitDisabled(f.task.Value())
}

// Input converts the fields to a validated cycle.Input.
func (f FormModel) Input() (cycle.Input, error) {
	return cycle.ParseInput(f.task.Value(), f.minutes.Value())
}

func (f *FormModel) Reset() {
	f.task.Reset()
	f.minutes.SetValue(strconv.Itoa(f.defaultMinutes))
	f.minutes.CursorEnd()
	f.focus = fieldTask
}

func (f *FormModel) Disable() {
	f.disabled = true
	f.task.Blur()
	f.minutes.Blur()
}

func (f *FormModel) Enable() tea.Cmd {
	f.disabled = false
	return f.FocusField(f.focus)
}

func (f *FormModel) FocusField(field formField) tea.Cmd {
	f.focus = field
	if f.disabled {
		return nil
	}
	if field == fieldMinutes {
		f.task.Blur()
		return f.minutes.Focus()
	}
	f.minutes.Blur()
	return f.task.Focus()
}

// StepMinutes moves the duration to the next multiple of the step in
// direction dir, clamped to the allowed range.
func (f *FormModel) StepMinutes(dir int) {
	n, err := strconv.Atoi(f.minutes.Value())
	if err != nil {
		n = f.defaultMinutes
	}
	base := (n / config.MinutesStep) * config.MinutesStep
	if dir > 0 {
		base += config.MinutesStep
	} else if dir < 0 && base == n {
		base -= config.MinutesStep
	}
	f.minutes.SetValue(strconv.Itoa(util.Clamp(base, config.MinMinutes, config.MaxMinutes)))
	f.minutes.CursorEnd()
}

func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if f.disabled {
		return f, nil
	}
	var cmd tea.Cmd
	if f.focus == fieldTask {
		f.task, cmd = f.task.Update(msg)
		return f, cmd
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "+", "=":
			f.StepMinutes(1)
			return f, nil
		case "-":
			f.StepMinutes(-1)
			return f, nil
		}
		if km.Type == tea.KeyRunes && !allDigits(km.Runes) {
			return f, nil
		}
	}
	f.minutes, cmd = f.minutes.Update(msg)
	return f, cmd
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
