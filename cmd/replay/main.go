package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/renderer"
	"github.com/xtaxx12/snake-game/pkg/replay"
)

func main() {
	var (
		recordDir = flag.String("dir", config.DefaultRecordDir, "directory to pick the latest recording from")
		speed     = flag.Float64("speed", 1, "playback speed multiplier")
	)
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		latest, err := replay.Latest(*recordDir)
		if err != nil {
			log.Fatal(err)
		}
		path = latest
	}
	if *speed <= 0 {
		log.Fatalf("speed must be positive, got %v", *speed)
	}

	frames, err := replay.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if len(frames) == 0 {
		log.Fatalf("%s has no frames", path)
	}

	render := renderer.NewTerminalRenderer(frames[0].State.GridSize)
	render.HideCursor()
	defer render.ShowCursor()

	for i, f := range frames {
		if i > 0 {
			time.Sleep(delay(frames[i-1], f, *speed))
		}
		hud := renderer.HUD{
			Message: fmt.Sprintf("📼 Replay %s  frame %d/%d", f.SessionID, i+1, len(frames)),
		}
		render.Render(f.State, hud)
	}
	fmt.Println("\n  📼 End of replay")
}

// delay returns the recorded gap between two frames, scaled by speed. Gaps
// longer than a second (pauses) are cut to one second.
func delay(prev, next replay.Frame, speed float64) time.Duration {
	d := next.At.Sub(prev.At)
	if d <= 0 {
		d = next.State.TickInterval
	}
	if d > time.Second {
		d = time.Second
	}
	return time.Duration(float64(d) / speed)
}
