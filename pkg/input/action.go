// Package input turns device events into game actions.
package input

import (
	"github.com/xtaxx12/snake-game/pkg/game"
)

// Kind identifies what an Action asks for
type Kind int

const (
	None Kind = iota
	Move
	Start        // start a new game (Enter, R, "start", "restart")
	TogglePause  // pause or resume (P, "pause")
	StartOrPause // start when no game is live, otherwise toggle pause (Space)
	ClearScores
	Quit
)

// Action is a normalized input event
type Action struct {
	Kind      Kind
	Direction game.Direction // set for Move
}

// Controller is the part of the game loop input needs
type Controller interface {
	Phase() game.Phase
	Start()
	TogglePause()
	SetDirection(d game.Direction) bool
}

// Dispatch applies a to c. Start only fires when no game is live and pause
// only toggles during a game, so a held key cannot restart a running game.
// Actions the controller does not handle (ClearScores, Quit) report false.
func Dispatch(c Controller, a Action) bool {
	switch a.Kind {
	case Move:
		return c.SetDirection(a.Direction)
	case Start:
		if c.Phase().Active() {
			return false
		}
		c.Start()
		return true
	case TogglePause:
		if !c.Phase().Active() {
			return false
		}
		c.TogglePause()
		return true
	case StartOrPause:
		if c.Phase().Active() {
			c.TogglePause()
		} else {
			c.Start()
		}
		return true
	}
	return false
}

// ParseAction maps the action names sent by web clients
func ParseAction(name string) Action {
	if d, ok := game.ParseDirection(name); ok {
		return Action{Kind: Move, Direction: d}
	}
	switch name {
	case "start", "restart":
		return Action{Kind: Start}
	case "pause":
		return Action{Kind: TogglePause}
	case "toggle":
		return Action{Kind: StartOrPause}
	case "clear_scores":
		return Action{Kind: ClearScores}
	}
	return Action{}
}

// fromChar maps the letter keys shared by every keyboard backend
func fromChar(c rune) Action {
	switch c {
	case 'w', 'W':
		return Action{Kind: Move, Direction: game.Up}
	case 's', 'S':
		return Action{Kind: Move, Direction: game.Down}
	case 'a', 'A':
		return Action{Kind: Move, Direction: game.Left}
	case 'd', 'D':
		return Action{Kind: Move, Direction: game.Right}
	case ' ':
		return Action{Kind: StartOrPause}
	case 'p', 'P':
		return Action{Kind: TogglePause}
	case 'r', 'R':
		return Action{Kind: Start}
	case 'c', 'C':
		return Action{Kind: ClearScores}
	case 'q', 'Q':
		return Action{Kind: Quit}
	}
	return Action{}
}
