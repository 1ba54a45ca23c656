package render_test

import (
	"image"
	"testing"

	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestLayoutGeometry(t *testing.T) {
	l := render.NewLayout(10, 20, 30)

	assert.Equal(t, image.Rect(16, 16, 316, 616), l.Board())
	assert.Equal(t, image.Rect(16, 16, 46, 46), l.Cell(0, 0))
	assert.Equal(t, image.Rect(286, 586, 316, 616), l.Cell(9, 19))
	assert.Equal(t, image.Rect(332, 16, 512, 616), l.Panel())

	w, h := l.ScreenSize()
	assert.Equal(t, 528, w)
	assert.Equal(t, 632, h)

	preview := l.Preview()
	assert.Equal(t, 120, preview.Dx())
	assert.Equal(t, l.Panel().Min.X+30, preview.Min.X)
}

func TestPreviewOriginCentersFilledCells(t *testing.T) {
	box := image.Rect(0, 0, 100, 100)

	tests := []struct {
		name string
		kind tetris.Kind
		want image.Point
	}{
		// I: filled row 1 of a 4x4 matrix, 80x20 wide.
		{"I", tetris.KindI, image.Pt(10, 40-20)},
		{"O", tetris.KindO, image.Pt(30, 30)},
		// T: 3x2 filled in a 3x3 matrix.
		{"T", tetris.KindT, image.Pt(20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.PreviewOrigin(tetris.BaseShape(tt.kind), box, 20))
		})
	}
}

func TestFlashAlpha(t *testing.T) {
	assert.Equal(t, 1.0, render.FlashAlpha(0))
	assert.Equal(t, 1.0, render.FlashAlpha(-3))
	assert.InDelta(t, 0.5*(1-0.3*0.7), render.FlashAlpha(0.3), 1e-9)
	assert.InDelta(t, 0.3, render.FlashAlpha(1), 1e-9)
}
