package cycle

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
)

// Input is the validated payload of the start form.
type Input struct {
	Task          string
	MinutesAmount int
}

// ParseInput converts raw form text into an Input and validates it.
func ParseInput(task, minutes string) (Input, error) {
	raw := strings.TrimSpace(minutes)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Input{}, &InputError{Field: "minutesAmount", Value: minutes, Err: ErrMinutesNotNumber}
	}
	in := Input{Task: strings.TrimSpace(task), MinutesAmount: n}
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func (in Input) Validate() error {
	if SubmitDisabled(in.Task) {
		return &InputError{Field: "task", Err: ErrEmptyTask}
	}
	n := in.MinutesAmount
	if n < config.MinMinutes || n > config.MaxMinutes {
		return &InputError{Field: "minutesAmount", Value: strconv.Itoa(n), Err: ErrMinutesOutOfRange}
	}
	if n%config.MinutesStep != 0 {
		return &InputError{Field: "minutesAmount", Value: strconv.Itoa(n), Err: ErrMinutesStep}
	}
	return nil
}

// SubmitDisabled reports whether the start control must stay disabled
// for the given task text.
func SubmitDisabled(task string) bool {
	return strings.TrimSpace(task) == ""
}
