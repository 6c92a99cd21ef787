// Package loop drives a game.Game in real time.
//
// A Loop owns the only timer in the system and serializes every call into
// the game behind one mutex, so input handlers running on other goroutines
// never race a tick.
package loop

import (
	"sync"
	"time"

	"github.com/xtaxx12/snake-game/pkg/game"
)

// FrameFunc receives a snapshot after every change. It runs with the loop
// locked and must not call back into the Loop.
type FrameFunc func(game.Snapshot)

// Loop schedules ticks at the game's current interval
type Loop struct {
	mu      sync.Mutex
	game    *game.Game
	onFrame FrameFunc
	timer   *time.Timer
	gen     uint64 // bumped on every (re)arm; stale timer callbacks compare against it
	closed  bool
}

// New wraps g. onFrame may be nil.
func New(g *game.Game, onFrame FrameFunc) *Loop {
	if onFrame == nil {
		onFrame = func(game.Snapshot) {}
	}
	return &Loop{game: g, onFrame: onFrame}
}

// Start starts a new game if the current one is idle or over
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.game.Phase().Active() {
		return
	}
	l.game.Start()
	l.arm()
	l.onFrame(l.game.Snapshot())
}

// Pause suspends the game and cancels the pending tick
func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.game.Phase() != game.PhaseRunning {
		return
	}
	l.game.Pause()
	l.disarm()
	l.onFrame(l.game.Snapshot())
}

// Resume continues a paused game with a fresh full interval
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.game.Phase() != game.PhasePaused {
		return
	}
	l.game.Resume()
	l.arm()
	l.onFrame(l.game.Snapshot())
}

// TogglePause pauses a running game or resumes a paused one
func (l *Loop) TogglePause() {
	switch l.Phase() {
	case game.PhaseRunning:
		l.Pause()
	case game.PhasePaused:
		l.Resume()
	}
}

// SetDirection forwards a turn request to the game
func (l *Loop) SetDirection(d game.Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	return l.game.SetDirection(d)
}

// Snapshot returns the current game snapshot
func (l *Loop) Snapshot() game.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Snapshot()
}

// Phase returns the current game phase
func (l *Loop) Phase() game.Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Phase()
}

// Close stops the timer. The loop ignores every call afterwards.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.disarm()
}

// arm schedules the next tick using the interval from a fresh snapshot.
// Callers hold l.mu.
func (l *Loop) arm() {
	l.disarm()
	if l.game.Phase() != game.PhaseRunning {
		return
	}
	gen := l.gen
	l.timer = time.AfterFunc(l.game.Snapshot().TickInterval, func() { l.fire(gen) })
}

// disarm cancels the pending tick. Callers hold l.mu.
func (l *Loop) disarm() {
	l.gen++
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *Loop) fire(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	// A timer that fired while Pause or Close held the lock is stale.
	if l.closed || gen != l.gen {
		return
	}
	l.timer = nil
	l.game.Tick()
	l.arm()
	l.onFrame(l.game.Snapshot())
}
