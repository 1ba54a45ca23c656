package assets

import (
	"image"

	"github.com/plus3/blockfall/tetris"
)

// Texture is a decoded cell image and the tag that identifies it on the
// board.
type Texture struct {
	Tag   tetris.Tag
	Name  string
	Image image.Image
}

// Catalog maps tags 1..N to decoded textures. The zero value is an empty
// catalog.
type Catalog struct {
	textures []Texture
}

// NewCatalog assigns tags 1..N to the given named images, in order.
func NewCatalog(names []string, images []image.Image) *Catalog {
	c := &Catalog{textures: make([]Texture, 0, len(images))}
	for i, img := range images {
		c.textures = append(c.textures, Texture{
			Tag:   tetris.Tag(i + 1),
			Name:  names[i],
			Image: img,
		})
	}
	return c
}

// Len returns the number of textures.
func (c *Catalog) Len() int {
	return len(c.textures)
}

// Tags returns every tag in the catalog in ascending order.
func (c *Catalog) Tags() []tetris.Tag {
	tags := make([]tetris.Tag, len(c.textures))
	for i, t := range c.textures {
		tags[i] = t.Tag
	}
	return tags
}

// Texture returns the texture for tag.
func (c *Catalog) Texture(tag tetris.Tag) (Texture, bool) {
	i := int(tag) - 1
	if tag == tetris.NoTag || i >= len(c.textures) {
		return Texture{}, false
	}
	return c.textures[i], true
}

// Image returns the decoded image for tag.
func (c *Catalog) Image(tag tetris.Tag) (image.Image, bool) {
	t, ok := c.Texture(tag)
	return t.Image, ok
}

// Textures returns all textures in tag order.
func (c *Catalog) Textures() []Texture {
	return c.textures
}

// Pool returns a tag pool that picks uniformly among the catalog's tags.
// An empty catalog yields a pool that always returns NoTag.
func (c *Catalog) Pool(seed uint64) tetris.TagPool {
	return tetris.NewRandomTags(seed, c.Tags())
}
