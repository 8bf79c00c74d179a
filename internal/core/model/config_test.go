package model

import (
	"errors"
	"testing"
	"time"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultSessionConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsNonPositiveValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{"zero work", func(c *SessionConfig) { c.WorkDuration = 0 }},
		{"negative short break", func(c *SessionConfig) { c.ShortBreakDuration = -time.Second }},
		{"zero long break", func(c *SessionConfig) { c.LongBreakDuration = 0 }},
		{"zero interval", func(c *SessionConfig) { c.LongBreakInterval = 0 }},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			config := DefaultSessionConfig()
			testCase.mutate(&config)
			err := config.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPhaseDuration(t *testing.T) {
	config := DefaultSessionConfig()

	if got := config.PhaseDuration(PhaseWork); got != 25*time.Minute {
		t.Errorf("work: got %v", got)
	}
	if got := config.PhaseDuration(PhaseShortBreak); got != 5*time.Minute {
		t.Errorf("short break: got %v", got)
	}
	if got := config.PhaseDuration(PhaseLongBreak); got != 15*time.Minute {
		t.Errorf("long break: got %v", got)
	}
	if got := config.PhaseDuration(PhaseIdle); got != 0 {
		t.Errorf("idle: got %v, want 0", got)
	}
}

func TestIsBreak(t *testing.T) {
	if PhaseWork.IsBreak() || PhaseIdle.IsBreak() {
		t.Error("work/idle must not be breaks")
	}
	if !PhaseShortBreak.IsBreak() || !PhaseLongBreak.IsBreak() {
		t.Error("break phases must report IsBreak")
	}
}
