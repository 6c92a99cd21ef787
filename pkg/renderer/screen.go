package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/xtaxx12/snake-game/pkg/game"
)

// Screen glyphs; each board cell is two columns wide
const (
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphFood  = '●'
	glyphCrash = 'X'
)

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead  = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCrash = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText  = tcell.StyleDefault
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// ScreenRenderer draws on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// boardOrigin is where cell (0,0) is drawn; the wall sits one cell outside
const (
	originX = 2
	originY = 3
)

func (r *ScreenRenderer) cell(p game.Point, ch rune, style tcell.Style) {
	x := originX + p.X*2
	y := originY + p.Y
	r.screen.SetContent(x, y, ch, nil, style)
	r.screen.SetContent(x+1, y, ch, nil, style)
}

func (r *ScreenRenderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Render draws the snapshot and HUD, then shows the screen
func (r *ScreenRenderer) Render(s game.Snapshot, hud HUD) {
	r.screen.Clear()

	r.text(originX-2, 0, "SNAKE", styleTitle)
	r.text(originX-2, 1, fmt.Sprintf("Score: %d  Best: %d  Speed: %dms", s.Score, hud.Best, s.TickInterval.Milliseconds()), styleText)

	n := s.GridSize
	for i := -1; i <= n; i++ {
		r.cell(game.Point{X: i, Y: -1}, '░', styleWall)
		r.cell(game.Point{X: i, Y: n}, '░', styleWall)
		r.cell(game.Point{X: -1, Y: i}, '░', styleWall)
		r.cell(game.Point{X: n, Y: i}, '░', styleWall)
	}

	r.cell(s.Food, glyphFood, styleFood)
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.cell(s.Snake[i], glyphHead, styleHead)
		} else {
			r.cell(s.Snake[i], glyphBody, styleBody)
		}
	}
	if s.CrashPoint != nil {
		r.cell(*s.CrashPoint, glyphCrash, styleCrash)
	}

	line := originY + n + 2
	switch s.Phase {
	case game.PhaseIdle:
		r.text(originX-2, line, "Press SPACE or ENTER to start", styleText)
	case game.PhasePaused:
		r.text(originX-2, line, "PAUSED - press SPACE to continue", styleText)
	case game.PhaseOver:
		msg := fmt.Sprintf("GAME OVER! Score: %d", s.Score)
		if hud.NewRecord {
			msg = fmt.Sprintf("NEW RECORD! Score: %d", s.Score)
		}
		r.text(originX-2, line, msg, styleCrash)
	}
	if hud.Message != "" {
		r.text(originX-2, line+1, hud.Message, styleText)
	}

	rankX := originX + (n+2)*2 + 2
	r.text(rankX, originY-1, "Rankings", styleTitle)
	if len(hud.Top) == 0 {
		r.text(rankX, originY, "Play to see your scores!", styleText)
	}
	for i, rec := range hud.Top {
		r.text(rankX, originY+i, fmt.Sprintf("#%-2d %5d  %s", i+1, rec.Score, formatDate(rec)), styleText)
	}

	r.screen.Show()
}
