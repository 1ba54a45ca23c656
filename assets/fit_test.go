package assets_test

import (
	"image"
	"testing"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name   string
		iw, ih int
		want   image.Rectangle
	}{
		{"square", 100, 100, image.Rect(5, 5, 25, 25)},
		{"wide", 200, 100, image.Rect(5, 10, 25, 20)},
		{"tall", 10, 40, image.Rect(12, 5, 17, 25)},
		{"tiny stays visible", 1000, 1, image.Rect(5, 14, 25, 15)},
		{"empty", 0, 5, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assets.Fit(tt.iw, tt.ih, 15, 15, 20))
		})
	}
}

func TestTagColor(t *testing.T) {
	_, ok := assets.TagColor(tetris.NoTag)
	assert.False(t, ok)

	a, ok := assets.TagColor(1)
	assert.True(t, ok)
	b, _ := assets.TagColor(9)
	assert.Equal(t, a, b, "palette wraps")
	c, _ := assets.TagColor(2)
	assert.NotEqual(t, a, c)
}
