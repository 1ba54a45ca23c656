package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{0x0a, 0x0d, 0x24, 0xff}
	boardColor      = color.RGBA{0x0b, 0x0e, 0x2a, 0xff}
	frameColor      = color.NRGBA{0xf4, 0x72, 0xb6, 0x40}
	gridColor       = color.NRGBA{0xf4, 0x72, 0xb6, 0x1a}
	highlightColor  = color.NRGBA{0xff, 0xff, 0xff, 0x0f}
	ghostColor      = color.NRGBA{0xff, 0xff, 0xff, 0x50}
	previewOutline  = color.NRGBA{0xec, 0x48, 0x99, 0xe6}
	flashColor      = color.NRGBA{0xf4, 0x72, 0xb6, 0xff}
	overlayColor    = color.NRGBA{0x00, 0x00, 0x00, 0xa0}
)

// Renderer draws a View onto an ebiten screen.
type Renderer struct {
	Layout   Layout
	Textures *Textures
}

// NewRenderer creates a renderer. textures may be nil.
func NewRenderer(layout Layout, textures *Textures) *Renderer {
	if textures == nil {
		textures = NewTextures(nil)
	}
	return &Renderer{Layout: layout, Textures: textures}
}

// Draw renders one frame.
func (r *Renderer) Draw(screen *ebiten.Image, v View) {
	screen.Fill(backgroundColor)
	r.drawBoard(screen)

	for y, row := range v.Board.Cells {
		for x, c := range row {
			if c.Filled {
				r.drawCell(screen, r.Layout.Cell(x, y), r.Layout.Pad, c.Tag, previewOutline)
			}
		}
	}
	if v.Ghost != nil && v.Current != nil && v.Ghost.Y != v.Current.Y {
		for x, y := range v.Ghost.Cells() {
			if y >= 0 {
				rect := inset(r.Layout.Cell(x, y), r.Layout.Pad)
				strokeRect(screen, rect, 1, ghostColor)
			}
		}
	}
	if v.Current != nil {
		for x, y := range v.Current.Cells() {
			if y >= 0 {
				r.drawCell(screen, r.Layout.Cell(x, y), r.Layout.Pad, v.Current.Tag, assets.Outline)
			}
		}
	}

	if len(v.ClearRows) > 0 {
		flash := withAlpha(flashColor, 0.35*FlashAlpha(v.ClearProgress))
		for _, y := range v.ClearRows {
			row := r.Layout.Cell(0, y).Union(r.Layout.Cell(r.Layout.Cols-1, y))
			fillRect(screen, row, flash)
		}
	}
	r.drawParticles(screen, v)
	r.drawPanel(screen, v)
	r.drawOverlay(screen, v.State)
}

func (r *Renderer) drawBoard(screen *ebiten.Image) {
	b := r.Layout.Board()
	fillRect(screen, b, boardColor)
	for x := 1; x < r.Layout.Cols; x++ {
		fx := float32(b.Min.X + x*r.Layout.CellSize)
		vector.StrokeLine(screen, fx, float32(b.Min.Y), fx, float32(b.Max.Y), 1, gridColor, false)
	}
	for y := 1; y < r.Layout.Rows; y++ {
		fy := float32(b.Min.Y + y*r.Layout.CellSize)
		vector.StrokeLine(screen, float32(b.Min.X), fy, float32(b.Max.X), fy, 1, gridColor, false)
	}
	strokeRect(screen, b, 2, frameColor)
}

// drawCell draws one block: its texture fitted inside the padded cell, a
// palette fill when the tag has no texture, or an outline when untagged.
func (r *Renderer) drawCell(screen *ebiten.Image, cell image.Rectangle, pad int, tag tetris.Tag, outline color.Color) {
	fillRect(screen, inset(cell, 1), highlightColor)
	content := inset(cell, pad)

	if tex, ok := r.Textures.Get(tag); ok {
		b := tex.Bounds()
		center := cell.Min.Add(cell.Max).Div(2)
		dst := assets.Fit(b.Dx(), b.Dy(), float64(center.X), float64(center.Y), float64(content.Dx()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(dst.Dx())/float64(b.Dx()), float64(dst.Dy())/float64(b.Dy()))
		op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(tex, op)
		return
	}
	if fill, ok := assets.TagColor(tag); ok {
		fillRect(screen, content, fill)
		return
	}
	strokeRect(screen, content, 2, outline)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, v View) {
	if v.Burst == nil {
		return
	}
	origin := r.Layout.Board().Min
	for _, p := range v.Burst.Particles() {
		a := v.Burst.Alpha(p)
		size := float32(v.Burst.Size(p))
		x := float32(origin.X) + float32(p.X) - size/2
		y := float32(origin.Y) + float32(p.Y) - size/2
		vector.DrawFilledRect(screen, x, y, size, size, withAlpha(flashColor, 0.6*a), false)
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, v View) {
	panel := r.Layout.Panel()
	box := r.Layout.Preview()
	ebitenutil.DebugPrintAt(screen, "NEXT", box.Min.X, box.Min.Y-GlyphHeight)
	fillRect(screen, box, highlightColor)
	strokeRect(screen, box, 1, gridColor)

	if v.Next != nil {
		cell := r.Layout.PreviewCell
		origin := PreviewOrigin(v.Next.Shape, box, cell)
		pad := max(1, cell/8)
		for x, y := range v.Next.Shape.Cells() {
			at := origin.Add(image.Pt(x*cell, y*cell))
			r.drawCell(screen, image.Rectangle{Min: at, Max: at.Add(image.Pt(cell, cell))}, pad, v.Next.Tag, previewOutline)
		}
	}

	y := box.Max.Y + r.Layout.Margin
	for _, line := range []string{
		fmt.Sprintf("LINES  %d", v.Stats.LinesCleared),
		fmt.Sprintf("PIECES %d", v.Stats.PiecesLocked),
		fmt.Sprintf("CLEARS %d", v.Stats.Clears),
	} {
		ebitenutil.DebugPrintAt(screen, line, panel.Min.X, y)
		y += GlyphHeight
	}

	if v.Quote != "" {
		y += r.Layout.Margin
		lines := Wrap(v.Quote, panel.Dx()/GlyphWidth-1)
		bubble := image.Rect(panel.Min.X-4, y-4, panel.Max.X, y+len(lines)*GlyphHeight+4)
		fillRect(screen, bubble, overlayColor)
		strokeRect(screen, bubble, 1, frameColor)
		for _, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, panel.Min.X, y)
			y += GlyphHeight
		}
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, state tetris.State) {
	var lines []string
	switch state {
	case tetris.StateNotStarted:
		lines = []string{"BLOCKFALL", "", "Press Space to start"}
	case tetris.StateGameOver:
		lines = []string{"GAME OVER", "", "Press R to restart"}
	default:
		return
	}
	b := r.Layout.Board()
	fillRect(screen, b, overlayColor)
	y := b.Min.Y + (b.Dy()-len(lines)*GlyphHeight)/2
	for _, line := range lines {
		x := b.Min.X + (b.Dx()-len(line)*GlyphWidth)/2
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += GlyphHeight
	}
}

func inset(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, clr, false)
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(min(max(a, 0), 1) * float64(c.A))
	return c
}
