package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a session configuration with non-positive values.
var ErrInvalidConfig = errors.New("invalid session config")

// ErrInvalidOperation indicates an operation not allowed in the current state.
var ErrInvalidOperation = errors.New("invalid operation")

// Phase identifies what the timer is currently counting down.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// SessionConfig contains the interval durations driving the session engine.
type SessionConfig struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakInterval  int
}

// DefaultSessionConfig returns the classic 25/5/15 pomodoro schedule.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakInterval:  4,
	}
}

// Validate checks that every duration and the long break interval are positive.
func (config SessionConfig) Validate() error {
	if config.WorkDuration <= 0 {
		return fmt.Errorf("%w: work duration must be positive", ErrInvalidConfig)
	}
	if config.ShortBreakDuration <= 0 {
		return fmt.Errorf("%w: short break duration must be positive", ErrInvalidConfig)
	}
	if config.LongBreakDuration <= 0 {
		return fmt.Errorf("%w: long break duration must be positive", ErrInvalidConfig)
	}
	if config.LongBreakInterval <= 0 {
		return fmt.Errorf("%w: long break interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// PhaseDuration returns the configured duration for the given phase.
func (config SessionConfig) PhaseDuration(phase Phase) time.Duration {
	switch phase {
	case PhaseWork:
		return config.WorkDuration
	case PhaseShortBreak:
		return config.ShortBreakDuration
	case PhaseLongBreak:
		return config.LongBreakDuration
	default:
		return 0
	}
}
