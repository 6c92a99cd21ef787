package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/game"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

// HUD is the score-side information drawn next to the board
type HUD struct {
	Best      int
	Top       []scores.Record
	NewRecord bool
	Message   string
}

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a gridSize board. The board
// gets a one-cell wall border.
func NewTerminalRenderer(gridSize int) *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout, gridSize)
}

// NewTerminalRendererTo renders to out instead of stdout
func NewTerminalRendererTo(out io.Writer, gridSize int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	size := gridSize + 2
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}

	return &TerminalRenderer{
		out:   out,
		board: board,
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

func (r *TerminalRenderer) set(p game.Point, cell int) {
	y, x := p.Y+1, p.X+1
	if y < 0 || y >= len(r.board) || x < 0 || x >= len(r.board[y]) {
		return
	}
	r.board[y][x] = cell
}

// Render draws the snapshot and HUD in one write
func (r *TerminalRenderer) Render(s game.Snapshot, hud HUD) {
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	size := len(r.board)
	for y := range r.board {
		for x := range r.board[y] {
			if y == 0 || x == 0 || y == size-1 || x == size-1 {
				r.board[y][x] = cellWall
			} else {
				r.board[y][x] = cellEmpty
			}
		}
	}

	r.set(s.Food, cellFood)
	for i, p := range s.Snake {
		if i == 0 {
			r.set(p, cellHead)
		} else {
			r.set(p, cellBody)
		}
	}
	if s.CrashPoint != nil {
		r.set(*s.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE GAME 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Best: %d  |  Speed: %dms\n",
		s.Score, hud.Best, s.TickInterval.Milliseconds()))
	if hud.Message != "" {
		r.buffer.WriteString("  " + hud.Message + "\n")
	} else {
		r.buffer.WriteString("\n")
	}
	r.buffer.WriteString("\n")

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  Space to start/pause, C to clear scores, Q to quit\n")

	switch s.Phase {
	case game.PhaseIdle:
		r.buffer.WriteString("\n  Press SPACE or ENTER to start\n")
	case game.PhasePaused:
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press SPACE to continue\n")
	case game.PhaseOver:
		if hud.NewRecord {
			r.buffer.WriteString(fmt.Sprintf("\n  🏆 NEW RECORD! Score: %d\n", s.Score))
		} else {
			r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Score: %d\n", s.Score))
		}
		r.buffer.WriteString("  Press SPACE or R to play again, Q to quit\n")
	}

	r.writeRankings(hud.Top)

	fmt.Fprint(r.out, r.buffer.String())
}

func (r *TerminalRenderer) writeRankings(top []scores.Record) {
	r.buffer.WriteString("\n  🏅 Rankings\n")
	if len(top) == 0 {
		r.buffer.WriteString("  Play to see your scores!\n")
		return
	}
	for i, rec := range top {
		r.buffer.WriteString(fmt.Sprintf("  #%-2d %5d  %s\n", i+1, rec.Score, formatDate(rec)))
	}
}

func formatDate(rec scores.Record) string {
	if rec.Date.IsZero() {
		return ""
	}
	return rec.Date.Local().Format("2006-01-02")
}
