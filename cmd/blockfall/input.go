package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Horizontal auto-repeat, in update ticks.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// Keys reports keyboard state for the current update tick.
type Keys interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
	// Duration is the number of ticks key has been held, 0 when released.
	Duration(key ebiten.Key) int
}

// EbitenKeys reads keys through inpututil.
type EbitenKeys struct{}

func (EbitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }
func (EbitenKeys) Duration(key ebiten.Key) int      { return inpututil.KeyPressDuration(key) }

// InputSystem maps keys onto engine commands.
//
//	Left/Right  move, repeating while held
//	Down        step down and hold soft drop
//	Up          hard drop
//	Space       rotate
//	R           restart
//	F1          toggle the debug overlay
//	Escape      quit
//
// On the start screen Space, Enter or Up begin the game.
type InputSystem struct {
	Engine  *tetris.Engine
	UI      *debugui.ImguiSystem
	Keys    Keys
	Restart func()

	Quit bool
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	k := s.Keys
	if k.JustPressed(ebiten.KeyEscape) {
		s.Quit = true
		return
	}
	if k.JustPressed(ebiten.KeyF1) && s.UI != nil {
		s.UI.Toggle()
	}
	if s.UI != nil && s.UI.InputState.WantCaptureKeyboard {
		return
	}

	if k.JustPressed(ebiten.KeyR) {
		s.restart()
		return
	}

	switch s.Engine.State() {
	case tetris.StateNotStarted, tetris.StateGameOver:
		if k.JustPressed(ebiten.KeySpace) || k.JustPressed(ebiten.KeyEnter) || k.JustPressed(ebiten.KeyUp) {
			s.restart()
		}
		return
	}

	if repeats(k.Duration(ebiten.KeyLeft)) {
		s.Engine.MoveHorizontal(-1)
	}
	if repeats(k.Duration(ebiten.KeyRight)) {
		s.Engine.MoveHorizontal(1)
	}
	if k.JustPressed(ebiten.KeyDown) {
		s.Engine.MoveDown()
		s.Engine.SetSoftDrop(true)
	}
	if k.JustReleased(ebiten.KeyDown) {
		s.Engine.SetSoftDrop(false)
	}
	if k.JustPressed(ebiten.KeyUp) {
		s.Engine.HardDrop()
	}
	if k.JustPressed(ebiten.KeySpace) {
		s.Engine.Rotate()
	}
}

func (s *InputSystem) restart() {
	if s.Restart != nil {
		s.Restart()
		return
	}
	s.Engine.Start()
}

// repeats reports whether a key held for ticks should fire this tick: on the
// first tick, then every repeatInterval ticks once repeatDelay has passed.
func repeats(ticks int) bool {
	switch {
	case ticks <= 0:
		return false
	case ticks == 1:
		return true
	case ticks < repeatDelay:
		return false
	default:
		return (ticks-repeatDelay)%repeatInterval == 0
	}
}
