package engine

import (
	"fmt"
	"sync"
	"time"

	"pomotick/internal/core/model"
	"pomotick/internal/history"
)

// breakWarningLead is how far before the end of a break the engine warns.
const breakWarningLead = time.Minute

// Options contains runtime options for the Engine.
type Options struct {
	TickInterval time.Duration
	// SkipLogsAbandoned marks skipped phases as abandoned in history.
	SkipLogsAbandoned bool
}

// DefaultOptions returns one-second ticks with abandoned-skip logging.
func DefaultOptions() Options {
	return Options{
		TickInterval:      time.Second,
		SkipLogsAbandoned: true,
	}
}

// Engine is the state machine that drives work and break phases.
type Engine struct {
	mu            sync.Mutex
	config        model.SessionConfig
	options       Options
	phase         model.Phase
	remaining     time.Duration
	phaseStarted  time.Time
	completedWork int
	running       bool
	goal          string
	warned        bool
	entries       []history.Entry
	events        []chan Event
	stopCh        chan struct{}
	stopped       bool
}

// New creates an idle Engine with the provided configuration.
func New(config model.SessionConfig, options Options) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	return &Engine{
		config:  config,
		options: options,
		phase:   model.PhaseIdle,
		stopCh:  make(chan struct{}),
	}, nil
}

// Configure replaces the session configuration. Allowed only while idle or paused.
func (eng *Engine) Configure(config model.SessionConfig) error {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if eng.running {
		return fmt.Errorf("%w: configure while running", model.ErrInvalidOperation)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	eng.config = config
	if eng.phase != model.PhaseIdle && eng.remaining > config.PhaseDuration(eng.phase) {
		eng.remaining = config.PhaseDuration(eng.phase)
	}
	return nil
}

// Config returns the current session configuration.
func (eng *Engine) Config() model.SessionConfig {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.config
}

// SetSkipLogsAbandoned toggles whether skips record abandoned entries.
func (eng *Engine) SetSkipLogsAbandoned(enabled bool) {
	eng.mu.Lock()
	eng.options.SkipLogsAbandoned = enabled
	eng.mu.Unlock()
}

// Start begins a work session with the given goal, or resumes a paused phase.
// It is a no-op when the countdown is already running.
func (eng *Engine) Start(goal string) {
	eng.mu.Lock()
	if eng.running || eng.stopped {
		eng.mu.Unlock()
		return
	}
	eng.running = true
	if eng.phase == model.PhaseIdle {
		eng.phase = model.PhaseWork
		eng.remaining = eng.config.WorkDuration
		eng.phaseStarted = time.Now()
		eng.goal = goal
		eng.warned = false
	}
	eng.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     eng.phase,
		Remaining: eng.remaining,
		At:        time.Now(),
	})
	eng.mu.Unlock()
}

// Pause halts the countdown and preserves the remaining time.
func (eng *Engine) Pause() {
	eng.mu.Lock()
	if !eng.running {
		eng.mu.Unlock()
		return
	}
	eng.running = false
	eng.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     eng.phase,
		Remaining: eng.remaining,
		At:        time.Now(),
	})
	eng.mu.Unlock()
}

// Reset returns the engine to idle. Recorded history is kept.
func (eng *Engine) Reset() {
	eng.mu.Lock()
	eng.running = false
	eng.phase = model.PhaseIdle
	eng.remaining = 0
	eng.completedWork = 0
	eng.goal = ""
	eng.warned = false
	eng.emitLocked(Event{
		Type:  EventStateChange,
		Phase: model.PhaseIdle,
		At:    time.Now(),
	})
	eng.mu.Unlock()
}

// Tick advances the countdown by one tick interval. The internal ticker
// loop calls this once per interval; tests may drive it directly.
func (eng *Engine) Tick() {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if !eng.running || eng.phase == model.PhaseIdle {
		return
	}

	eng.remaining -= eng.options.TickInterval
	if eng.remaining <= 0 {
		eng.remaining = 0
		eng.completePhaseLocked(false, time.Now())
		return
	}

	if eng.phase.IsBreak() && !eng.warned && eng.remaining <= breakWarningLead {
		eng.warned = true
		eng.emitLocked(Event{
			Type:      EventBreakEnding,
			Phase:     eng.phase,
			Remaining: eng.remaining,
			At:        time.Now(),
		})
	}

	eng.emitLocked(Event{
		Type:      EventProgress,
		Phase:     eng.phase,
		Remaining: eng.remaining,
		Progress:  eng.progressLocked(),
		At:        time.Now(),
	})
}

// Skip completes the current phase immediately, as if the countdown expired.
func (eng *Engine) Skip() {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if eng.phase == model.PhaseIdle {
		return
	}
	abandoned := eng.remaining > 0 && eng.options.SkipLogsAbandoned
	eng.remaining = 0
	eng.completePhaseLocked(abandoned, time.Now())
}

// Snapshot returns a copy of the current state.
func (eng *Engine) Snapshot() Snapshot {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return Snapshot{
		Phase:                 eng.phase,
		Remaining:             eng.remaining,
		CompletedWorkSessions: eng.completedWork,
		Running:               eng.running,
		Goal:                  eng.goal,
	}
}

// History returns a copy of the entries recorded during this run.
func (eng *Engine) History() []history.Entry {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return append([]history.Entry(nil), eng.entries...)
}

// Subscribe registers a new observer channel.
func (eng *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	eng.mu.Lock()
	eng.events = append(eng.events, ch)
	eng.mu.Unlock()
	return ch
}

// Stop terminates the ticking loop and closes observer channels.
func (eng *Engine) Stop() {
	eng.mu.Lock()
	if eng.stopped {
		eng.mu.Unlock()
		return
	}
	eng.stopped = true
	eng.running = false
	close(eng.stopCh)
	events := eng.events
	eng.events = nil
	eng.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Run drives Tick from an internal ticker until Stop is called. The
// presentation layer launches it in a goroutine; tests call Tick directly.
func (eng *Engine) Run() {
	eng.mu.Lock()
	interval := eng.options.TickInterval
	eng.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-eng.stopCh:
			return
		case <-ticker.C:
			eng.Tick()
		}
	}
}

func (eng *Engine) completePhaseLocked(abandoned bool, now time.Time) {
	finished := eng.phase
	entry := history.Entry{
		Phase:     finished,
		StartedAt: eng.phaseStarted,
		EndedAt:   now,
		Goal:      eng.goal,
		Abandoned: abandoned,
	}
	eng.entries = append(eng.entries, entry)

	var next model.Phase
	if finished == model.PhaseWork {
		eng.completedWork++
		if eng.completedWork%eng.config.LongBreakInterval == 0 {
			next = model.PhaseLongBreak
		} else {
			next = model.PhaseShortBreak
		}
	} else {
		next = model.PhaseWork
		eng.goal = ""
	}

	eng.phase = next
	eng.remaining = eng.config.PhaseDuration(next)
	eng.phaseStarted = now
	eng.warned = false

	eng.emitLocked(Event{
		Type:      EventPhaseCompleted,
		Phase:     next,
		Finished:  finished,
		LongBreak: next == model.PhaseLongBreak,
		Remaining: eng.remaining,
		Entry:     &entry,
		At:        now,
	})
}

func (eng *Engine) emitLocked(event Event) {
	events := append([]chan Event(nil), eng.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (eng *Engine) progressLocked() float64 {
	total := eng.config.PhaseDuration(eng.phase)
	if total <= 0 {
		return 1
	}
	progress := float64(total-eng.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
