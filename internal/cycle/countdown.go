package cycle

import "github.com/akyairhashvil/pomo/internal/models"

// Countdown derives the remaining minutes and seconds of the active
// cycle. Without an active cycle it is zero.
func Countdown(s State) models.Countdown {
	active, ok := s.Active()
	if !ok {
		return models.Countdown{}
	}
	remaining := active.TotalSeconds() - s.ElapsedSeconds
	if remaining < 0 {
		remaining = 0
	}
	return models.Countdown{Minutes: remaining / 60, Seconds: remaining % 60}
}

// Progress is the elapsed fraction of the active cycle in [0, 1].
func Progress(s State) float64 {
	active, ok := s.Active()
	if !ok || active.TotalSeconds() == 0 {
		return 0
	}
	p := float64(s.ElapsedSeconds) / float64(active.TotalSeconds())
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
