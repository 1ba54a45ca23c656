package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/tetris"
)

// TextureSource resolves a tag to its decoded cell image.
type TextureSource interface {
	Image(tag tetris.Tag) (image.Image, bool)
}

// Textures uploads cell images to the GPU on first use and keeps them keyed
// by tag. A miss is cached too, so unknown tags are looked up once.
type Textures struct {
	source   TextureSource
	cache    *intmap.Map[tetris.Tag, *ebiten.Image]
	uploaded []*ebiten.Image
}

// NewTextures creates a cache over source, which may be nil.
func NewTextures(source TextureSource) *Textures {
	return &Textures{
		source: source,
		cache:  intmap.New[tetris.Tag, *ebiten.Image](32),
	}
}

// Get returns the GPU image for tag.
func (t *Textures) Get(tag tetris.Tag) (*ebiten.Image, bool) {
	if t.source == nil || tag == tetris.NoTag {
		return nil, false
	}
	if img, ok := t.cache.Get(tag); ok {
		return img, img != nil
	}
	var img *ebiten.Image
	if src, ok := t.source.Image(tag); ok {
		img = ebiten.NewImageFromImage(src)
		t.uploaded = append(t.uploaded, img)
	}
	t.cache.Put(tag, img)
	return img, img != nil
}

// Len returns the number of cached lookups.
func (t *Textures) Len() int {
	return t.cache.Len()
}

// Dispose releases every uploaded image.
func (t *Textures) Dispose() {
	for _, img := range t.uploaded {
		img.Deallocate()
	}
	t.uploaded = nil
	t.cache.Clear()
}
