package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/xtaxx12/snake-game/pkg/game"
	"github.com/xtaxx12/snake-game/pkg/input"
	"github.com/xtaxx12/snake-game/pkg/renderer"
)

// frontend is a display plus the input device that goes with it
type frontend interface {
	Render(s game.Snapshot, hud renderer.HUD)
	Actions() <-chan input.Action
	Close()
}

// terminalFrontend draws with ANSI escapes and reads raw keys
type terminalFrontend struct {
	keys    *input.KeyboardHandler
	render  *renderer.TerminalRenderer
	actions chan input.Action
}

func newTerminalFrontend(gridSize int) (*terminalFrontend, error) {
	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return nil, err
	}

	f := &terminalFrontend{
		keys:    keys,
		render:  renderer.NewTerminalRenderer(gridSize),
		actions: make(chan input.Action),
	}
	f.render.HideCursor()

	go func() {
		for ev := range keys.GetInputChan() {
			if a := input.ParseKey(ev); a.Kind != input.None {
				f.actions <- a
			}
		}
	}()
	return f, nil
}

func (f *terminalFrontend) Render(s game.Snapshot, hud renderer.HUD) {
	f.render.Render(s, hud)
}

func (f *terminalFrontend) Actions() <-chan input.Action {
	return f.actions
}

func (f *terminalFrontend) Close() {
	f.render.ShowCursor()
	f.keys.Stop()
}

// screenFrontend runs on a tcell screen
type screenFrontend struct {
	screen  tcell.Screen
	render  *renderer.ScreenRenderer
	actions chan input.Action
}

func newScreenFrontend() (*screenFrontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	f := &screenFrontend{
		screen:  screen,
		render:  renderer.NewScreenRenderer(screen),
		actions: make(chan input.Action),
	}

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// screen finalized
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if a := input.ParseTcell(ev); a.Kind != input.None {
					f.actions <- a
				}
			}
		}
	}()
	return f, nil
}

func (f *screenFrontend) Render(s game.Snapshot, hud renderer.HUD) {
	f.render.Render(s, hud)
}

func (f *screenFrontend) Actions() <-chan input.Action {
	return f.actions
}

func (f *screenFrontend) Close() {
	f.screen.Fini()
}
