// Package boardimg renders board snapshots to raster images without a
// window, for reports and debugging.
package boardimg

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/tetris"
)

// TextureSource resolves a tag to its cell image.
type TextureSource interface {
	Image(tag tetris.Tag) (image.Image, bool)
}

// Renderer draws snapshots with a fixed cell size. Textures are optional;
// tags without one are filled from the tag palette and untagged cells are
// drawn as outlines.
type Renderer struct {
	cellSize int
	pad      float64
	textures TextureSource

	bufs   *intmap.Map[tetris.Tag, *gg.ImageBuf]
	colors *intmap.Map[tetris.Tag, gg.RGBA]
}

// New creates a renderer. textures may be nil.
func New(cellSize int, textures TextureSource) *Renderer {
	return &Renderer{
		cellSize: cellSize,
		pad:      max(1, float64(cellSize)/10),
		textures: textures,
		bufs:     intmap.New[tetris.Tag, *gg.ImageBuf](16),
		colors:   intmap.New[tetris.Tag, gg.RGBA](16),
	}
}

// Size returns the pixel size of a rendered snapshot.
func (r *Renderer) Size(snap tetris.BoardSnapshot) (w, h int) {
	return snap.Cols * r.cellSize, snap.Rows * r.cellSize
}

// Render draws the snapshot and, if non-nil, the falling piece on top of it.
func (r *Renderer) Render(snap tetris.BoardSnapshot, piece *tetris.Piece) image.Image {
	dc := r.draw(snap, piece)
	defer dc.Close()
	return dc.Image()
}

// EncodePNG writes the rendered snapshot as PNG.
func (r *Renderer) EncodePNG(w io.Writer, snap tetris.BoardSnapshot, piece *tetris.Piece) error {
	dc := r.draw(snap, piece)
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

// SavePNG writes the rendered snapshot to path.
func (r *Renderer) SavePNG(path string, snap tetris.BoardSnapshot, piece *tetris.Piece) error {
	dc := r.draw(snap, piece)
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save board %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(snap tetris.BoardSnapshot, piece *tetris.Piece) *gg.Context {
	w, h := r.Size(snap)
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Hex("#0b1020"))

	dc.SetRGBA(1, 1, 1, 0.06)
	dc.SetLineWidth(1)
	for x := 0; x <= snap.Cols; x++ {
		dc.DrawLine(float64(x*r.cellSize), 0, float64(x*r.cellSize), float64(h))
	}
	for y := 0; y <= snap.Rows; y++ {
		dc.DrawLine(0, float64(y*r.cellSize), float64(w), float64(y*r.cellSize))
	}
	_ = dc.Stroke()

	for y, row := range snap.Cells {
		for x, c := range row {
			if c.Filled {
				r.cell(dc, x, y, c.Tag)
			}
		}
	}
	if piece != nil {
		for x, y := range piece.Cells() {
			if y >= 0 {
				r.cell(dc, x, y, piece.Tag)
			}
		}
	}
	return dc
}

func (r *Renderer) cell(dc *gg.Context, col, row int, tag tetris.Tag) {
	size := float64(r.cellSize)
	x, y := float64(col)*size, float64(row)*size
	cx, cy := x+size/2, y+size/2
	inner := size - 2*r.pad

	if buf, ok := r.texture(tag); ok {
		rect := assets.Fit(buf.Width(), buf.Height(), cx, cy, inner)
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			X:             float64(rect.Min.X),
			Y:             float64(rect.Min.Y),
			DstWidth:      float64(rect.Dx()),
			DstHeight:     float64(rect.Dy()),
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
		return
	}

	if fill, ok := r.color(tag); ok {
		dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
		dc.DrawRectangle(x+r.pad, y+r.pad, inner, inner)
		_ = dc.Fill()
		return
	}

	dc.SetColor(assets.Outline)
	dc.SetLineWidth(2)
	dc.DrawRectangle(cx-inner/2, cy-inner/2, inner, inner)
	_ = dc.Stroke()
}

func (r *Renderer) texture(tag tetris.Tag) (*gg.ImageBuf, bool) {
	if r.textures == nil || tag == tetris.NoTag {
		return nil, false
	}
	if buf, ok := r.bufs.Get(tag); ok {
		return buf, buf != nil
	}
	img, ok := r.textures.Image(tag)
	var buf *gg.ImageBuf
	if ok {
		buf = gg.ImageBufFromImage(img)
	}
	r.bufs.Put(tag, buf)
	return buf, buf != nil
}

func (r *Renderer) color(tag tetris.Tag) (gg.RGBA, bool) {
	if c, ok := r.colors.Get(tag); ok {
		return c, true
	}
	c, ok := assets.TagColor(tag)
	if !ok {
		return gg.RGBA{}, false
	}
	rgba := gg.FromColor(c)
	r.colors.Put(tag, rgba)
	return rgba, true
}
