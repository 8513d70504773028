package config

import "time"

// Cycle duration bounds, in minutes.
const (
	MinMinutes     = 5
	MaxMinutes     = 60
	MinutesStep    = 5
	DefaultMinutes = 25
)

// TickInterval is how often the countdown is recomputed.
const TickInterval = time.Second

// Application settings.
const (
	AppName      = "pomo"
	EnvPrefix    = "POMO_"
	LogFileName  = "pomo.log"
	DefaultTheme = "default"
)

// DefaultSuggestions are offered while typing a task name.
var DefaultSuggestions = []string{"Project 1", "Project 2", "Project 3", "Banana"}
