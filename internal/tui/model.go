package tui

import (
	"context"
	"log/slog"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the root bubbletea model: the start form, the countdown
// and the cycle history of this session.
type MainModel struct {
	ctx       context.Context
	settings  config.Settings
	driver    *timer.Driver
	run       *timer.Run
	state     cycle.State
	form      FormModel
	progress  progress.Model
	keys      *HandlerRegistry
	theme     Theme
	themeName string

	statusMessage string
	statusIsError bool
	width, height int
}

func NewMainModel(ctx context.Context, settings config.Settings, driver *timer.Driver) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if driver == nil {
		driver = timer.NewDriver(nil, config.TickInterval)
	}
	if settings.ReportDir == "" {
		settings.ReportDir = util.ReportsDir(config.AppName)
	}
	m := MainModel{
		ctx:      ctx,
		settings: settings,
		driver:   driver,
		form:     NewFormModel(settings.Suggestions, settings.DefaultMinutes),
		keys:     defaultRegistry(),
	}
	m = m.applyTheme(settings.Theme)
	return m
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case ReportMsg:
		return m.handleReport(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// State exposes the cycle store for callers driving the model directly.
func (m MainModel) State() cycle.State {
	return m.state
}

func (m MainModel) mode() Mode {
	if m.state.IsRunning() {
		return ModeRunning
	}
	return ModeIdle
}

func (m MainModel) applyTheme(name string) MainModel {
	if _, ok := Themes[name]; !ok {
		name = config.DefaultTheme
	}
	m.themeName = name
	m.theme = ResolveTheme(name)
	width := m.progress.Width
	if width == 0 {
		width = config.ProgressWidth
	}
	m.progress = progress.New(
		progress.WithGradient(m.theme.ProgressFrom, m.theme.ProgressTo),
		progress.WithoutPercentage(),
	)
	m.progress.Width = width
	return m
}

// startTimer tears down any previous run and schedules ticks for the
// active cycle.
func (m MainModel) startTimer() (MainModel, tea.Cmd) {
	m = m.stopTimer()
	active, ok := m.state.Active()
	if !ok {
		return m, nil
	}
	m.run = m.driver.Start(m.ctx, active.ID, active.StartDate, active.Duration())
	return m, waitForTick(m.run)
}

func (m MainModel) stopTimer() MainModel {
	if m.run != nil {
		m.run.Stop()
		m.run = nil
	}
	return m
}

func (m MainModel) setStatus(msg string) MainModel {
	m.statusMessage = msg
	m.statusIsError = false
	return m
}

func (m MainModel) setStatusError(msg string) MainModel {
	m.statusMessage = msg
	m.statusIsError = true
	return m
}

func (m MainModel) logTransition(event string) {
	active, _ := m.state.Active()
	slog.Debug(event, "active", active.ID, "elapsed", m.state.ElapsedSeconds, "cycles", len(m.state.Cycles))
}
