package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/xtaxx12/snake-game/pkg/game"
)

// ParseTcell maps a tcell key event to an Action
func ParseTcell(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return Action{Kind: Move, Direction: game.Up}
	case tcell.KeyDown:
		return Action{Kind: Move, Direction: game.Down}
	case tcell.KeyLeft:
		return Action{Kind: Move, Direction: game.Left}
	case tcell.KeyRight:
		return Action{Kind: Move, Direction: game.Right}
	case tcell.KeyEnter:
		return Action{Kind: Start}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: Quit}
	case tcell.KeyRune:
		return fromChar(ev.Rune())
	}
	return Action{}
}
