package tetris

import (
	"fmt"
	"iter"
	"strings"
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k names one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Kinds returns every piece kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}
}

// ParseKind converts a single-letter name ("I", "o", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown piece kind %q", s)
}

// Shape is a row-major occupancy matrix: Shape[y][x] is true when the cell
// at column x of row y is filled. Shapes returned by this package are never
// modified in place; rotation always allocates a new matrix.
type Shape [][]bool

var baseShapes = [KindCount]Shape{
	KindI: mustShape(
		"....",
		"####",
		"....",
		"....",
	),
	KindO: mustShape(
		"##",
		"##",
	),
	KindT: mustShape(
		".#.",
		"###",
		"...",
	),
	KindL: mustShape(
		"..#",
		"###",
		"...",
	),
	KindJ: mustShape(
		"#..",
		"###",
		"...",
	),
	KindS: mustShape(
		".##",
		"##.",
		"...",
	),
	KindZ: mustShape(
		"##.",
		".##",
		"...",
	),
}

// ParseShape builds a Shape from rows of '#' (filled) and '.' (empty).
// All rows must have the same width.
func ParseShape(rows ...string) (Shape, error) {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), len(rows[0]))
		}
		shape[y] = make([]bool, len(row))
		for x, c := range row {
			switch c {
			case '#':
				shape[y][x] = true
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected %q", y, c)
			}
		}
	}
	return shape, nil
}

func mustShape(rows ...string) Shape {
	shape, err := ParseShape(rows...)
	if err != nil {
		panic(err)
	}
	return shape
}

// BaseShape returns a copy of the spawn orientation of kind.
func BaseShape(kind Kind) Shape {
	if !kind.Valid() {
		panic("tetris: invalid piece kind " + kind.String())
	}
	return baseShapes[kind].Clone()
}

// Height returns the number of rows in the matrix.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the matrix.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// RotateClockwise returns s turned 90 degrees clockwise about its own
// bounding box. An H×W matrix becomes W×H with out[x][H-1-y] = s[y][x].
func (s Shape) RotateClockwise() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := range out {
		out[x] = make([]bool, h)
	}
	for y := range h {
		for x := range w {
			out[x][h-1-y] = s[y][x]
		}
	}
	return out
}

// LeadingEmptyRows counts the all-empty rows above the first filled row.
func (s Shape) LeadingEmptyRows() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				return n
			}
		}
		n++
	}
	return n
}

// Bounds returns the inclusive bounding box of the filled cells.
// ok is false for a shape with no filled cells.
func (s Shape) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	first := true
	for x, y := range s.Cells() {
		if first {
			minX, minY, maxX, maxY = x, y, x, y
			first = false
			continue
		}
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	return minX, minY, maxX, maxY, !first
}

// Cells yields the (x, y) matrix coordinates of every filled cell in
// row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s {
			for x, filled := range row {
				if filled && !yield(x, y) {
					return
				}
			}
		}
	}
}

// Equal reports whether s and other have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
