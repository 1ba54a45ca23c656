package render

import (
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/tetris"
)

// View is everything drawn in one frame. It is captured from the engine and
// the cosmetic collaborators so drawing never reaches back into them.
type View struct {
	State   tetris.State
	Board   tetris.BoardSnapshot
	Current *tetris.Piece
	Ghost   *tetris.Piece
	Next    *tetris.Piece
	Stats   tetris.Stats

	ClearRows []int
	// ClearProgress runs from 0 to 1 across the clear phase.
	ClearProgress float64

	Burst *effects.Burst
	Quote string
}

// Capture reads the drawable state of e. The ghost is only included when
// showGhost is set.
func Capture(e *tetris.Engine, showGhost bool) View {
	v := View{
		State: e.State(),
		Board: e.Board(),
		Stats: e.Stats(),
	}
	if p, ok := e.Current(); ok {
		v.Current = &p
	}
	if p, ok := e.Next(); ok {
		v.Next = &p
	}
	if g, ok := e.Ghost(); ok && showGhost {
		v.Ghost = &g
	}
	if rows, deadline, ok := e.Clearing(); ok {
		v.ClearRows = rows
		if d := e.Config().ClearDuration; d > 0 {
			v.ClearProgress = 1 - float64(deadline-e.Now())/float64(d)
		} else {
			v.ClearProgress = 1
		}
	}
	return v
}
