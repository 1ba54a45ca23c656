package tetris

import "iter"

// Piece is a tetromino positioned on a board. X and Y locate the top-left
// corner of the shape's bounding box; Y is negative while the piece is still
// entering from above the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	Tag   Tag
}

// SpawnPiece creates a piece of the given kind in its spawn orientation,
// horizontally centered on a board cols wide and raised by its leading empty
// rows so that it scrolls in from the top edge.
func SpawnPiece(kind Kind, tag Tag, cols int) Piece {
	shape := BaseShape(kind)
	return Piece{
		Kind:  kind,
		Shape: shape,
		X:     (cols - shape.Width()) / 2,
		Y:     -shape.LeadingEmptyRows(),
		Tag:   tag,
	}
}

// Translated returns p moved by (dx, dy). The shape is shared.
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Clone returns a copy of p that does not share its shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Cells yields the board coordinates of every filled cell.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for x, y := range p.Shape.Cells() {
			if !yield(p.X+x, p.Y+y) {
				return
			}
		}
	}
}
