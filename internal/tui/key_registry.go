package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the timer phase a key binding belongs to.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRunning
)

var allModes = []Mode{ModeIdle, ModeRunning}

func (md Mode) String() string {
	if md == ModeRunning {
		return "running"
	}
	return "idle"
}

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	// Describe, when set, replaces Description in the help line with
	// text derived from the current model.
	Describe func(m MainModel) string
	Modes    []Mode
	Priority int
}

func (b KeyBinding) AppliesTo(mode Mode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding) label(m MainModel) string {
	if b.Describe != nil {
		return b.Describe(m)
	}
	return b.Description
}

// HandlerRegistry keeps one priority-ordered binding list per mode so a
// key press only walks the bindings of the current phase.
type HandlerRegistry struct {
	byMode map[Mode][]KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{byMode: make(map[Mode][]KeyBinding)}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	for _, mode := range allModes {
		if !b.AppliesTo(mode) {
			continue
		}
		list := append(r.byMode[mode], b)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority > list[j].Priority
		})
		r.byMode[mode] = list
	}
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.byMode[m.mode()] {
		if b.Key != key {
			continue
		}
		if next, cmd, handled := b.Handler(m, key); handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode Mode) []KeyBinding {
	return r.byMode[mode]
}

// Help renders the bindings of the model's current mode, one entry per
// distinct label.
func (r *HandlerRegistry) Help(m MainModel) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.byMode[m.mode()] {
		text := b.label(m)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		parts = append(parts, "["+b.Key+"]"+text)
	}
	return strings.Join(parts, "|")
}
