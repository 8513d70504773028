package tui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "default" || names[1] != "dracula" {
		t.Fatalf("unexpected theme names %v", names)
	}
	if NextThemeName("default") != "dracula" || NextThemeName("dracula") != "default" {
		t.Fatalf("unexpected theme cycle")
	}
	if NextThemeName("missing") != "default" {
		t.Fatalf("unknown theme should restart at default")
	}
}

func TestResolveThemeFallback(t *testing.T) {
	if ResolveTheme("nope").Name != "Default" {
		t.Fatalf("expected fallback to default theme")
	}
	if ResolveTheme("dracula").Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatDuration(90e9) != "1m" {
		t.Fatalf("FormatDuration = %q", FormatDuration(90e9))
	}
	if FormatClock(t0) != "09:00" {
		t.Fatalf("FormatClock = %q", FormatClock(t0))
	}
}
