package tetris

import (
	"math/rand/v2"
	"slices"
)

// PieceFactory supplies the kind and visual tag of every new piece.
type PieceFactory interface {
	NextPiece() (Kind, Tag)
}

// Randomizer chooses piece kinds.
type Randomizer interface {
	NextKind() Kind
}

// TagPool chooses visual tags. An empty pool yields NoTag.
type TagPool interface {
	NextTag() Tag
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// UniformRandomizer picks each kind independently with equal probability.
type UniformRandomizer struct {
	rng *rand.Rand
}

func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: newRand(seed)}
}

func (r *UniformRandomizer) NextKind() Kind {
	return Kind(r.rng.IntN(KindCount))
}

// BagRandomizer deals all seven kinds in a shuffled order before reshuffling,
// so no kind is absent for more than twelve pieces in a row.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: newRand(seed)}
}

func (r *BagRandomizer) NextKind() Kind {
	if len(r.bag) == 0 {
		r.bag = Kinds()
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	k := r.bag[0]
	r.bag = r.bag[1:]
	return k
}

// SequenceRandomizer repeats a fixed list of kinds. It is used for replays
// and tests.
type SequenceRandomizer struct {
	kinds []Kind
	next  int
}

// NewSequenceRandomizer panics if kinds is empty.
func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	if len(kinds) == 0 {
		panic("tetris: empty kind sequence")
	}
	return &SequenceRandomizer{kinds: slices.Clone(kinds)}
}

func (r *SequenceRandomizer) NextKind() Kind {
	k := r.kinds[r.next]
	r.next = (r.next + 1) % len(r.kinds)
	return k
}

// RandomTags picks uniformly from a fixed set of tags.
type RandomTags struct {
	rng  *rand.Rand
	tags []Tag
}

func NewRandomTags(seed uint64, tags []Tag) *RandomTags {
	return &RandomTags{rng: newRand(seed), tags: slices.Clone(tags)}
}

func (p *RandomTags) NextTag() Tag {
	if len(p.tags) == 0 {
		return NoTag
	}
	return p.tags[p.rng.IntN(len(p.tags))]
}

// Factory combines a Randomizer with an optional TagPool.
type Factory struct {
	Kinds Randomizer
	Tags  TagPool
}

// NewFactory returns the default factory: uniform kinds and a uniformly
// chosen tag from tags, both derived from seed.
func NewFactory(seed uint64, tags []Tag) *Factory {
	return &Factory{
		Kinds: NewUniformRandomizer(seed),
		Tags:  NewRandomTags(seed+1, tags),
	}
}

func (f *Factory) NextPiece() (Kind, Tag) {
	kind := f.Kinds.NextKind()
	if f.Tags == nil {
		return kind, NoTag
	}
	return kind, f.Tags.NextTag()
}
