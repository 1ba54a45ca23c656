package main

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Weights scores a board after a candidate placement. Lines rewards
// cleared rows; the others are penalties and are expected to be negative.
type Weights struct {
	Lines     float64
	Height    float64
	Holes     float64
	Bumpiness float64
}

var DefaultWeights = Weights{
	Lines:     0.76,
	Height:    -0.51,
	Holes:     -0.36,
	Bumpiness: -0.18,
}

// Placement is a resting position for the current piece, reached by
// rotating clockwise Rotations times and moving to column X.
type Placement struct {
	Rotations int
	X, Y      int
	Lines     int
	Score     float64
}

// Plan evaluates every rotation and column for p on board and returns the
// best scoring placement. Ties keep the first candidate found. It reports
// false when no placement fits.
func Plan(board tetris.BoardSnapshot, p tetris.Piece, w Weights) (Placement, bool) {
	base := boardFrom(board)
	var (
		best  Placement
		found bool
	)
	shape := p.Shape
	for rot := range 4 {
		for x := -shape.Width(); x < board.Cols; x++ {
			if base.Collides(shape, x, p.Y) {
				continue
			}
			y := p.Y
			for !base.Collides(shape, x, y+1) {
				y++
			}

			trial := boardFrom(board)
			trial.Lock(shape, x, y, p.Tag)
			full := trial.FullRows()
			trial.ClearRows(full)

			f := measure(trial)
			score := w.Lines*float64(len(full)) +
				w.Height*float64(f.height) +
				w.Holes*float64(f.holes) +
				w.Bumpiness*float64(f.bumpiness)
			if !found || score > best.Score {
				best = Placement{Rotations: rot, X: x, Y: y, Lines: len(full), Score: score}
				found = true
			}
		}
		shape = shape.RotateClockwise()
	}
	return best, found
}

type features struct {
	height    int
	holes     int
	bumpiness int
}

func measure(b *tetris.Board) features {
	var f features
	prev := -1
	for x := range b.Cols() {
		h := 0
		for y := range b.Rows() {
			if b.Occupied(x, y) {
				if h == 0 {
					h = b.Rows() - y
				}
			} else if h > 0 {
				f.holes++
			}
		}
		f.height += h
		if prev >= 0 {
			f.bumpiness += abs(h - prev)
		}
		prev = h
	}
	return f
}

func boardFrom(s tetris.BoardSnapshot) *tetris.Board {
	b := tetris.NewBoard(s.Cols, s.Rows)
	for y := range s.Rows {
		for x := range s.Cols {
			if c := s.At(x, y); c.Filled {
				b.Set(x, y, c)
			}
		}
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Bot plays the engine: each frame with a controllable piece it plans a
// placement, steers the piece there and hard-drops it.
type Bot struct {
	Engine  *tetris.Engine
	Weights Weights
}

func (b *Bot) Execute(frame *loop.Frame) {
	e := b.Engine
	if e.State() != tetris.StateRunning {
		return
	}
	cur, ok := e.Current()
	if !ok {
		return
	}
	plan, ok := Plan(e.Board(), cur, b.Weights)
	if ok {
		for range plan.Rotations {
			e.Rotate()
		}
		for {
			cur, _ = e.Current()
			if cur.X == plan.X {
				break
			}
			dx := 1
			if plan.X < cur.X {
				dx = -1
			}
			if !e.MoveHorizontal(dx) {
				break
			}
		}
	}
	e.HardDrop()
}
