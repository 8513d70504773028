package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/cycle"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/runner"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the timer needs an interactive terminal; use `pomo start` instead")

type cli struct {
	Config    string `short:"c" help:"Configuration file path (YAML)." type:"path"`
	Verbose   bool   `short:"v" help:"Enable debug logging."`
	LogFile   string `help:"Write logs to this file." type:"path"`
	Theme     string `help:"Color theme (default, dracula)."`
	ReportDir string `help:"Directory for exported PDF reports." type:"path"`

	Tui struct{} `cmd:"" default:"1" help:"Run the interactive timer."`

	Start struct {
		Task    string `arg:"" help:"What you will work on."`
		Minutes int    `short:"m" help:"Duration in minutes (5-60, step 5). Defaults to the configured duration."`
		Report  bool   `help:"Write a PDF report when the cycle ends."`
	} `cmd:"" help:"Run a single cycle without the interactive UI."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name(config.AppName),
		kong.Description("A countdown timer for focused work."),
		kong.UsageOnError(),
	)

	settings, err := loadSettings(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch kctx.Command() {
	case "start <task>":
		err = runStart(ctx, c, settings)
	default:
		err = runTUI(ctx, c, settings)
	}
	if err != nil {
		slog.Error("pomo failed", "error", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings layers .env, the config file, POMO_* variables and
// finally the command-line flags.
func loadSettings(c cli) (config.Settings, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Settings{}, err
	}
	settings, err := config.Load(c.Config)
	if err != nil {
		return settings, err
	}
	if c.Theme != "" {
		settings.Theme = c.Theme
	}
	if c.ReportDir != "" {
		settings.ReportDir = c.ReportDir
	}
	if c.LogFile != "" {
		settings.LogFile = c.LogFile
	}
	if settings.ReportDir == "" {
		settings.ReportDir = util.ReportsDir(config.AppName)
	}
	return settings, nil
}

// setupLogging installs the default slog logger. Without a log file the
// output goes to fallback, which may be nil to discard it.
func setupLogging(path string, verbose bool, fallback io.Writer) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(util.NewLogger(fallback, verbose))
		return io.NopCloser(nil), nil
	}
	f, err := util.OpenLogFile(path)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(util.NewLogger(f, verbose))
	return f, nil
}

func runTUI(ctx context.Context, c cli, settings config.Settings) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	logPath := settings.LogFile
	if logPath == "" {
		var err error
		if logPath, err = util.LogFile(config.AppName, config.LogFileName); err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
	}
	closer, err := setupLogging(logPath, c.Verbose, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	model := tui.NewMainModel(ctx, settings, timer.NewDriver(nil, config.TickInterval))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runStart(ctx context.Context, c cli, settings config.Settings) error {
	closer, err := setupLogging(settings.LogFile, c.Verbose, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	in := cycle.Input{Task: c.Start.Task, MinutesAmount: startMinutes(c.Start.Minutes, settings)}
	driver := timer.NewDriver(nil, config.TickInterval)
	state, err := runner.New(driver, os.Stdout).Run(ctx, in)
	if err != nil {
		return err
	}
	if !c.Start.Report {
		return nil
	}
	path, err := report.WritePDF(state.Cycles, settings.ReportDir, driver.Clock().Now())
	if err != nil {
		return err
	}
	fmt.Printf("PDF Report generated: %s\n", path)
	return nil
}

func startMinutes(flag int, settings config.Settings) int {
	if flag == 0 {
		return settings.DefaultMinutes
	}
	return flag
}
