package tetris

import (
	"slices"
	"strings"
)

// Tag is an opaque visual identity carried by pieces and locked cells.
// The engine never interprets it; renderers map it to a texture or color.
type Tag uint32

// NoTag marks a piece or cell that has no visual asset attached.
const NoTag Tag = 0

// Cell is one grid position. The zero value is an empty cell.
type Cell struct {
	Filled bool
	Tag    Tag
}

// Board is a fixed-size grid of locked cells addressed as (x, y) with y
// growing downwards. Row 0 is the top row.
type Board struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewBoard creates an empty cols×rows board.
func NewBoard(cols, rows int) *Board {
	b := &Board{cols: cols, rows: rows}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]Cell, b.rows)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.cols)
	}
}

func (b *Board) Cols() int { return b.cols }
func (b *Board) Rows() int { return b.rows }

// InBounds reports whether x is a valid column and y is above the floor.
// Rows above the top edge (y < 0) count as in bounds.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y < b.rows
}

// Occupied reports whether (x, y) holds a locked cell. Positions above the
// board are never occupied.
func (b *Board) Occupied(x, y int) bool {
	if y < 0 || !b.InBounds(x, y) {
		return false
	}
	return b.cells[y][x].Filled
}

// At returns the cell at (x, y), or an empty cell outside the grid.
func (b *Board) At(x, y int) Cell {
	if y < 0 || !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// Set overwrites the cell at (x, y). Positions outside the grid are ignored.
func (b *Board) Set(x, y int, c Cell) {
	if y < 0 || !b.InBounds(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Collides reports whether shape placed with its top-left corner at
// (offX, offY) overlaps a wall, the floor, or a locked cell.
func (b *Board) Collides(shape Shape, offX, offY int) bool {
	for x, y := range shape.Cells() {
		bx, by := offX+x, offY+y
		if !b.InBounds(bx, by) {
			return true
		}
		if b.Occupied(bx, by) {
			return true
		}
	}
	return false
}

// Lock writes tag into every grid cell covered by shape at (offX, offY).
// Filled cells above the top edge are dropped. It returns the number of
// cells written.
func (b *Board) Lock(shape Shape, offX, offY int, tag Tag) int {
	written := 0
	for x, y := range shape.Cells() {
		bx, by := offX+x, offY+y
		if by < 0 || by >= b.rows || bx < 0 || bx >= b.cols {
			continue
		}
		b.cells[by][bx] = Cell{Filled: true, Tag: tag}
		written++
	}
	return written
}

// FullRows returns the indices of completely filled rows in ascending order.
func (b *Board) FullRows() []int {
	var rows []int
	for y, row := range b.cells {
		if rowFull(row) {
			rows = append(rows, y)
		}
	}
	return rows
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearRows removes the given rows and inserts the same number of empty rows
// at the top. Surviving rows keep their relative order. Duplicate and
// out-of-range indices are ignored.
func (b *Board) ClearRows(rows []int) {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.rows {
			remove[y] = true
		}
	}
	if len(remove) == 0 {
		return
	}

	kept := make([][]Cell, 0, b.rows)
	for range remove {
		kept = append(kept, make([]Cell, b.cols))
	}
	for y, row := range b.cells {
		if !remove[y] {
			kept = append(kept, row)
		}
	}
	b.cells = kept
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() BoardSnapshot {
	cells := make([][]Cell, b.rows)
	for y := range b.cells {
		cells[y] = slices.Clone(b.cells[y])
	}
	return BoardSnapshot{Cols: b.cols, Rows: b.rows, Cells: cells}
}

// BoardSnapshot is a read-only copy of a Board taken at one instant.
type BoardSnapshot struct {
	Cols  int
	Rows  int
	Cells [][]Cell
}

// At returns the cell at (x, y), or an empty cell outside the grid.
func (s BoardSnapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Cols || y < 0 || y >= s.Rows {
		return Cell{}
	}
	return s.Cells[y][x]
}

// Filled counts the occupied cells.
func (s BoardSnapshot) Filled() int {
	n := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both snapshots hold the same cells.
func (s BoardSnapshot) Equal(other BoardSnapshot) bool {
	if s.Cols != other.Cols || s.Rows != other.Rows {
		return false
	}
	for y := range s.Cells {
		if !slices.Equal(s.Cells[y], other.Cells[y]) {
			return false
		}
	}
	return true
}

func (s BoardSnapshot) String() string {
	var b strings.Builder
	for y, row := range s.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
