package config

// Layout constants.
const (
	// InputWidth is the visible width of the task field.
	InputWidth = 40

	// MaxTaskLength caps the task name.
	MaxTaskLength = 80

	// ProgressWidth is the preferred progress bar width.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest progress bar drawn.
	MinProgressWidth = 10

	// CompactModeThreshold switches to compact rendering below this width.
	CompactModeThreshold = 60
)

// Display limits.
const (
	// MaxHistoryShown limits finished cycles listed under the timer.
	MaxHistoryShown = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
