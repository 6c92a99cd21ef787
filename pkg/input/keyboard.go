package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/xtaxx12/snake-game/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseKey maps arrow keys, WASD and the command keys to an Action
func ParseKey(input KeyInput) Action {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return Action{Kind: Move, Direction: game.Up}
	case keyboard.KeyArrowDown:
		return Action{Kind: Move, Direction: game.Down}
	case keyboard.KeyArrowLeft:
		return Action{Kind: Move, Direction: game.Left}
	case keyboard.KeyArrowRight:
		return Action{Kind: Move, Direction: game.Right}
	case keyboard.KeySpace:
		return Action{Kind: StartOrPause}
	case keyboard.KeyEnter:
		return Action{Kind: Start}
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Action{Kind: Quit}
	}
	return fromChar(input.Char)
}
