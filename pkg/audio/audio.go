// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/xtaxx12/snake-game/pkg/game"
)

// Cue is a sound worth playing between two frames
type Cue int

const (
	CueNone Cue = iota
	CueStart
	CueEat
	CueSpeedUp
	CueGameOver
)

// CueFor picks the cue for the step from prev to next. Game over wins over
// everything else and a speed-up wins over a plain eat.
func CueFor(prev, next game.Snapshot) Cue {
	switch {
	case next.Phase == game.PhaseOver && prev.Phase != game.PhaseOver:
		return CueGameOver
	case next.Phase == game.PhaseRunning && (prev.Phase == game.PhaseIdle || prev.Phase == game.PhaseOver):
		return CueStart
	case next.TickInterval < prev.TickInterval:
		return CueSpeedUp
	case next.Score > prev.Score:
		return CueEat
	}
	return CueNone
}

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueStart:    {{523, 60 * time.Millisecond}, {784, 80 * time.Millisecond}},
	CueEat:      {{880, 50 * time.Millisecond}},
	CueSpeedUp:  {{880, 50 * time.Millisecond}, {1175, 70 * time.Millisecond}},
	CueGameOver: {{392, 120 * time.Millisecond}, {330, 120 * time.Millisecond}, {262, 240 * time.Millisecond}},
}

// Player plays cues on the system speaker. A zero Player is silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. On error the returned Player is
// silent, so callers can log the error and keep going.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Player{enabled: true}, nil
}

// Play queues the tones for c without blocking
func (p *Player) Play(c Cue) {
	if p == nil || !p.enabled {
		return
	}
	s, err := Streamer(c)
	if err != nil || s == nil {
		return
	}
	speaker.Play(s)
}

// Streamer builds the tone sequence for c, or nil for CueNone
func Streamer(c Cue) (beep.Streamer, error) {
	notes := cueNotes[c]
	if len(notes) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %vHz tone: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), sine))
	}
	return beep.Seq(parts...), nil
}
