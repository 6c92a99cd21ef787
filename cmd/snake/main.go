package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xtaxx12/snake-game/pkg/audio"
	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/game"
	"github.com/xtaxx12/snake-game/pkg/input"
	"github.com/xtaxx12/snake-game/pkg/loop"
	"github.com/xtaxx12/snake-game/pkg/renderer"
	"github.com/xtaxx12/snake-game/pkg/replay"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

func main() {
	var (
		envFile   = flag.String("env", ".env", "settings file with SNAKE_* variables")
		useScreen = flag.Bool("screen", false, "full-screen UI instead of plain ANSI output")
		mute      = flag.Bool("mute", false, "disable sound")
		record    = flag.Bool("record", false, "write a replay of every game to the record directory")
		debugLog  = flag.String("log", "", "write log output to this file")
	)
	flag.Parse()

	// Log lines would corrupt the board, so they go to a file or nowhere.
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Println("Error opening log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	if err := run(cfg, *useScreen, *mute, *record); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("\n  Thanks for playing! 👋")
}

func run(cfg config.Game, useScreen, mute, record bool) error {
	ctx := context.Background()

	store, err := scores.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	keeper, err := scores.NewKeeper(ctx, store, cfg.RankingSize)
	if err != nil {
		return err
	}
	defer keeper.Close()

	var player *audio.Player
	if !mute {
		if player, err = audio.NewPlayer(); err != nil {
			log.Printf("🔇 sound disabled: %v", err)
		}
	}

	var fe frontend
	if useScreen {
		fe, err = newScreenFrontend()
	} else {
		fe, err = newTerminalFrontend(cfg.GridSize)
	}
	if err != nil {
		return err
	}
	defer fe.Close()

	frames := make(chan game.Snapshot, 64)
	results := make(chan scores.Result, 8)

	g := game.NewGame(cfg)
	g.OnGameOver(keeper.Submit)
	keeper.OnResult(func(r scores.Result) {
		select {
		case results <- r:
		default:
		}
	})

	lp := loop.New(g, func(s game.Snapshot) {
		select {
		case frames <- s:
		default:
		}
	})
	defer lp.Close()

	s := session{cfg: cfg, player: player, record: record}
	defer s.stopRecording()

	s.hud.Best, s.hud.Top = keeper.Ranking()
	s.prev = lp.Snapshot()
	fe.Render(s.prev, s.hud)

	for {
		select {
		case a := <-fe.Actions():
			switch a.Kind {
			case input.Quit:
				return nil
			case input.ClearScores:
				if err := keeper.Clear(ctx); err != nil {
					log.Printf("Failed to clear scores: %v", err)
					s.hud.Message = "Could not clear scores"
				} else {
					s.hud.Best, s.hud.Top = keeper.Ranking()
					s.hud.NewRecord = false
					s.hud.Message = "Scores cleared"
				}
				fe.Render(lp.Snapshot(), s.hud)
			default:
				input.Dispatch(lp, a)
			}

		case snap := <-frames:
			s.frame(snap)
			fe.Render(snap, s.hud)

		case r := <-results:
			s.hud.Best, s.hud.Top, s.hud.NewRecord = r.Best, r.Top, r.NewRecord
			if r.Err != nil {
				s.hud.Message = "Score could not be saved"
			}
			fe.Render(lp.Snapshot(), s.hud)
		}
	}
}

// session carries per-run presentation state between frames
type session struct {
	cfg    config.Game
	player *audio.Player
	record bool

	hud  renderer.HUD
	prev game.Snapshot
	rec  *replay.Recorder
}

func (s *session) frame(snap game.Snapshot) {
	cue := audio.CueFor(s.prev, snap)
	s.player.Play(cue)

	if cue == audio.CueStart {
		s.hud.NewRecord = false
		s.hud.Message = ""
		s.startRecording()
	}
	if s.rec != nil {
		s.rec.Record(snap)
	}
	if snap.Phase == game.PhaseOver {
		s.stopRecording()
	}
	s.prev = snap
}

func (s *session) startRecording() {
	s.stopRecording()
	if !s.record {
		return
	}
	rec, err := replay.NewRecorder(s.cfg.RecordDir)
	if err != nil {
		log.Printf("Failed to start recording: %v", err)
		return
	}
	log.Printf("📼 Recording session %s to %s", rec.SessionID(), rec.Path())
	s.rec = rec
}

func (s *session) stopRecording() {
	if s.rec == nil {
		return
	}
	if err := s.rec.Close(); err != nil {
		log.Printf("Failed to close recording: %v", err)
	}
	s.rec = nil
}
