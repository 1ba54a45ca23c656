package render

import (
	"image"

	"github.com/plus3/blockfall/tetris"
)

// Layout positions the board and the side panel on screen.
type Layout struct {
	Cols, Rows int
	CellSize   int
	// Pad is the inset of a cell's content from its edges.
	Pad    int
	Margin int
	// PanelWidth is the width of the side panel holding the next preview
	// and counters.
	PanelWidth int
	// PreviewCell is the cell size used inside the next preview box.
	PreviewCell int
}

// NewLayout returns the stock layout for a board of the given size.
func NewLayout(cols, rows, cellSize int) Layout {
	return Layout{
		Cols:        cols,
		Rows:        rows,
		CellSize:    cellSize,
		Pad:         max(1, cellSize*2/15),
		Margin:      16,
		PanelWidth:  6 * cellSize,
		PreviewCell: max(4, cellSize*4/5),
	}
}

// Board returns the screen rectangle of the playfield.
func (l Layout) Board() image.Rectangle {
	return image.Rect(l.Margin, l.Margin, l.Margin+l.Cols*l.CellSize, l.Margin+l.Rows*l.CellSize)
}

// Cell returns the screen rectangle of board cell (x, y).
func (l Layout) Cell(x, y int) image.Rectangle {
	b := l.Board()
	x0 := b.Min.X + x*l.CellSize
	y0 := b.Min.Y + y*l.CellSize
	return image.Rect(x0, y0, x0+l.CellSize, y0+l.CellSize)
}

// Panel returns the screen rectangle of the side panel.
func (l Layout) Panel() image.Rectangle {
	b := l.Board()
	return image.Rect(b.Max.X+l.Margin, b.Min.Y, b.Max.X+l.Margin+l.PanelWidth, b.Max.Y)
}

// Preview returns the box the next piece is centered in.
func (l Layout) Preview() image.Rectangle {
	p := l.Panel()
	side := 5 * l.PreviewCell
	x := p.Min.X + (p.Dx()-side)/2
	return image.Rect(x, p.Min.Y+l.Margin, x+side, p.Min.Y+l.Margin+side)
}

// ScreenSize returns the logical screen size needed for the layout.
func (l Layout) ScreenSize() (w, h int) {
	p := l.Panel()
	return p.Max.X + l.Margin, p.Max.Y + l.Margin
}

// PreviewOrigin returns where shape cell (0, 0) must be drawn, with cells of
// size cell, so that the filled part of shape is centered in box.
func PreviewOrigin(shape tetris.Shape, box image.Rectangle, cell int) image.Point {
	minX, minY, maxX, maxY, ok := shape.Bounds()
	if !ok {
		return box.Min
	}
	w := (maxX - minX + 1) * cell
	h := (maxY - minY + 1) * cell
	startX := box.Min.X + (box.Dx()-w)/2
	startY := box.Min.Y + (box.Dy()-h)/2
	return image.Pt(startX-minX*cell, startY-minY*cell)
}

// FlashAlpha returns the opacity of the highlight drawn over rows that are
// being cleared, given how far into the clear phase we are (0..1). The
// highlight pulses twice and fades out.
func FlashAlpha(progress float64) float64 {
	progress = min(max(progress, 0), 1)
	pulse := 0.5
	if int(progress*4)%2 == 0 {
		pulse = 1
	}
	return pulse * (1 - progress*0.7)
}
