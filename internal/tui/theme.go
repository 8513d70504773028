package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Header        lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Digit         lipgloss.Style
	Separator     lipgloss.Style
	Start         lipgloss.Style
	StartDisabled lipgloss.Style
	Stop          lipgloss.Style
	Completed     lipgloss.Style
	Interrupted   lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	ProgressFrom  string
	ProgressTo    string
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Digit:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true).Padding(1, 2),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Padding(1, 1),
		Start:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("35")).Bold(true).Padding(0, 3),
		StartDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("238")).Padding(0, 3),
		Stop:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 3),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Interrupted:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		ProgressFrom:  "#00875A",
		ProgressTo:    "#00B37E",
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Digit:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Bold(true).Padding(1, 2),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true).Padding(1, 1),
		Start:         lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")).Bold(true).Padding(0, 3),
		StartDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Background(lipgloss.Color("237")).Padding(0, 3),
		Stop:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("210")).Bold(true).Padding(0, 3),
		Completed:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Interrupted:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		ProgressFrom:  "#BD93F9",
		ProgressTo:    "#FF79C6",
	},
}

// ResolveTheme returns the named theme, falling back to default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames returns the registered theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for k := range Themes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NextThemeName cycles through ThemeNames after current.
func NextThemeName(current string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
