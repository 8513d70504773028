package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/alecthomas/kong"
)

func parse(t *testing.T, args ...string) (cli, *kong.Context) {
	t.Helper()
	var c cli
	parser, err := kong.New(&c, kong.Name(config.AppName))
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return c, kctx
}

func TestParseDefaultsToTUI(t *testing.T) {
	_, kctx := parse(t)
	if kctx.Command() != "tui" {
		t.Fatalf("command = %q, want tui", kctx.Command())
	}
}

func TestParseStart(t *testing.T) {
	c, kctx := parse(t, "--theme", "dracula", "start", "Write spec", "-m", "5", "--report")
	if kctx.Command() != "start <task>" {
		t.Fatalf("command = %q", kctx.Command())
	}
	if c.Start.Task != "Write spec" || c.Start.Minutes != 5 || !c.Start.Report {
		t.Fatalf("unexpected start flags %+v", c.Start)
	}
	if c.Theme != "dracula" {
		t.Fatalf("theme = %q", c.Theme)
	}
}

func TestLoadSettingsFlagsOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pomo.yaml")
	if err := os.WriteFile(cfg, []byte("default_minutes: 30\ntheme: default\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("POMO_THEME", "")

	settings, err := loadSettings(cli{Config: cfg, Theme: "dracula", ReportDir: dir})
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if settings.DefaultMinutes != 30 || settings.Theme != "dracula" || settings.ReportDir != dir {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestStartMinutes(t *testing.T) {
	s := config.Defaults()
	if startMinutes(0, s) != config.DefaultMinutes {
		t.Fatalf("expected configured default when flag unset")
	}
	if startMinutes(10, s) != 10 {
		t.Fatalf("expected flag value")
	}
}

func TestSetupLoggingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomo.log")
	closer, err := setupLogging(path, true, nil)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
