package engine

import (
	"time"

	"pomotick/internal/core/model"
	"pomotick/internal/history"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventStateChange fires on start, pause, resume and reset.
	EventStateChange EventType = "state_change"
	// EventProgress fires on every tick while the countdown is running.
	EventProgress EventType = "progress"
	// EventPhaseCompleted fires when a phase ends, naturally or by skip.
	EventPhaseCompleted EventType = "phase_completed"
	// EventBreakEnding fires once per break when a minute remains.
	EventBreakEnding EventType = "break_ending"
)

// Event represents an engine update for observers.
type Event struct {
	Type      EventType
	Phase     model.Phase
	Finished  model.Phase
	LongBreak bool
	Remaining time.Duration
	Progress  float64
	Entry     *history.Entry
	At        time.Time
}

// Snapshot is a read-only copy of engine state for rendering.
type Snapshot struct {
	Phase                 model.Phase
	Remaining             time.Duration
	CompletedWorkSessions int
	Running               bool
	Goal                  string
}
