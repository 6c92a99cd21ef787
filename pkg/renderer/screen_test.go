package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/xtaxx12/snake-game/pkg/game"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y, from, width int) string {
	var b strings.Builder
	for x := from; x < from+width; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func TestScreenRenderer(t *testing.T) {
	screen := newSimScreen(t)
	r := NewScreenRenderer(screen)

	s := sampleSnapshot()
	r.Render(s, HUD{Best: 40, Top: []scores.Record{{Score: 40}}})

	head := s.Snake[0]
	if got := runeAt(screen, originX+head.X*2, originY+head.Y); got != glyphHead {
		t.Errorf("Expected head glyph at %v, got %q", head, got)
	}
	if got := runeAt(screen, originX+s.Food.X*2+1, originY+s.Food.Y); got != glyphFood {
		t.Errorf("Expected food glyph at %v, got %q", s.Food, got)
	}
	if got := runeAt(screen, originX-2, originY-1); got != '░' {
		t.Errorf("Expected wall at top-left corner, got %q", got)
	}
	if line := rowText(screen, 1, 0, 30); !strings.HasPrefix(line, "Score: 10  Best: 40") {
		t.Errorf("Unexpected HUD line %q", line)
	}
}

func TestScreenRendererGameOver(t *testing.T) {
	screen := newSimScreen(t)
	r := NewScreenRenderer(screen)

	s := sampleSnapshot()
	s.Phase = game.PhaseOver
	crash := game.Point{X: 3, Y: 2}
	s.CrashPoint = &crash
	r.Render(s, HUD{NewRecord: true})

	if got := runeAt(screen, originX+crash.X*2, originY+crash.Y); got != glyphCrash {
		t.Errorf("Expected crash glyph, got %q", got)
	}
	line := rowText(screen, originY+s.GridSize+2, 0, 24)
	if !strings.HasPrefix(line, "NEW RECORD! Score: 10") {
		t.Errorf("Expected new record banner, got %q", line)
	}
}
