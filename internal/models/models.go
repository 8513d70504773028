package models

import (
	"fmt"
	"time"
)

// CycleStatus enumerates the states of a timing attempt.
type CycleStatus string

const (
	CycleStatusActive      CycleStatus = "active"
	CycleStatusInterrupted CycleStatus = "interrupted"
)

// Cycle represents one task-timing attempt.
type Cycle struct {
	ID            string
	Task          string
	MinutesAmount int
	StartDate     time.Time
	InterruptDate *time.Time // Set on stop or when the countdown runs out
	Completed     bool       // True when the countdown ran out rather than being stopped
}

// Status is derived from InterruptDate; a stamped cycle is terminal.
func (c Cycle) Status() CycleStatus {
	if c.InterruptDate != nil {
		return CycleStatusInterrupted
	}
	return CycleStatusActive
}

func (c Cycle) TotalSeconds() int {
	return c.MinutesAmount * 60
}

func (c Cycle) Duration() time.Duration {
	return time.Duration(c.TotalSeconds()) * time.Second
}

// Countdown is the remaining time of the active cycle.
type Countdown struct {
	Minutes int
	Seconds int
}

func (c Countdown) MinutesDigits() string {
	return fmt.Sprintf("%02d", c.Minutes)
}

func (c Countdown) SecondsDigits() string {
	return fmt.Sprintf("%02d", c.Seconds)
}

// Digits returns the four display digits, MMSS.
func (c Countdown) Digits() string {
	return c.MinutesDigits() + c.SecondsDigits()
}

func (c Countdown) String() string {
	return c.MinutesDigits() + ":" + c.SecondsDigits()
}
