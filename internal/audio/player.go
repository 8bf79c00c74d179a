package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes and plays short notification cues.
type Player struct {
	mu      sync.Mutex
	enabled bool
	ready   bool
}

// NewPlayer initializes the speaker. A failed audio backend is not fatal:
// the player stays silent and PlayCue becomes a no-op.
func NewPlayer(enabled bool) (*Player, error) {
	player := &Player{enabled: enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return player, fmt.Errorf("init speaker: %w", err)
	}
	player.ready = true
	return player, nil
}

// SetEnabled toggles cue playback.
func (player *Player) SetEnabled(enabled bool) {
	player.mu.Lock()
	player.enabled = enabled
	player.mu.Unlock()
}

// PlayCue plays the phase transition chime, a rising two-tone sequence.
func (player *Player) PlayCue() {
	player.play(chime(660, 880))
}

// PlayWarning plays the single short tone used for the one-minute warning.
func (player *Player) PlayWarning() {
	player.play(chime(880))
}

// Close shuts the audio backend down.
func (player *Player) Close() {
	player.mu.Lock()
	ready := player.ready
	player.ready = false
	player.mu.Unlock()
	if ready {
		speaker.Close()
	}
}

func (player *Player) play(streamer beep.Streamer) {
	player.mu.Lock()
	ok := player.enabled && player.ready
	player.mu.Unlock()
	if !ok {
		return
	}
	speaker.Play(streamer)
}

// chime builds a sequence of short sine tones at the given frequencies.
func chime(frequencies ...float64) beep.Streamer {
	segments := make([]beep.Streamer, 0, len(frequencies)*2)
	for _, frequency := range frequencies {
		tone, err := generators.SineTone(sampleRate, frequency)
		if err != nil {
			continue
		}
		segments = append(segments,
			beep.Take(sampleRate.N(180*time.Millisecond), tone),
			beep.Silence(sampleRate.N(40*time.Millisecond)),
		)
	}
	return beep.Seq(segments...)
}
