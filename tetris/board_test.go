package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBoardInBounds(t *testing.T) {
	b := tetris.NewBoard(10, 20)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 19, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 20, false},
		{5, -3, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.InBounds(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestBoardOccupied(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	b.Set(2, 3, tetris.Cell{Filled: true, Tag: 4})

	assert.True(t, b.Occupied(2, 3))
	assert.False(t, b.Occupied(3, 3))
	assert.False(t, b.Occupied(2, -1), "above the board is always free")
	assert.Equal(t, tetris.Tag(4), b.At(2, 3).Tag)
}

func TestBoardCollides(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	o := tetris.BaseShape(tetris.KindO)
	b.Set(5, 10, tetris.Cell{Filled: true})

	assert.False(t, b.Collides(o, 0, 0))
	assert.False(t, b.Collides(o, 4, -1), "partly above the board")
	assert.False(t, b.Collides(o, 8, 18))
	assert.True(t, b.Collides(o, -1, 0), "left wall")
	assert.True(t, b.Collides(o, 9, 0), "right wall")
	assert.True(t, b.Collides(o, 0, 19), "floor")
	assert.True(t, b.Collides(o, 4, 9), "locked cell")
	assert.False(t, b.Collides(o, 3, -5), "entirely above the board")
}

func TestBoardLockDropsCellsAboveTop(t *testing.T) {
	b := tetris.NewBoard(10, 20)

	written := b.Lock(tetris.BaseShape(tetris.KindO), 0, -1, 3)

	assert.Equal(t, 2, written)
	snap := b.Snapshot()
	assert.Equal(t, 2, snap.Filled())
	assert.Equal(t, tetris.Cell{Filled: true, Tag: 3}, snap.At(0, 0))
	assert.Equal(t, tetris.Cell{Filled: true, Tag: 3}, snap.At(1, 0))
}

func TestBoardFullRows(t *testing.T) {
	b := tetris.NewBoard(4, 6)
	for _, y := range []int{5, 1, 3} {
		fillRow(b, y)
	}
	b.Set(0, 4, tetris.Cell{Filled: true})

	assert.Equal(t, []int{1, 3, 5}, b.FullRows())
}

func fillRow(b *tetris.Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := range b.Cols() {
		if !skip[x] {
			b.Set(x, y, tetris.Cell{Filled: true, Tag: tetris.Tag(y + 1)})
		}
	}
}

// rowTag identifies a partially filled row by the tag of its first filled
// cell.
func rowTag(s tetris.BoardSnapshot, y int) tetris.Tag {
	for x := range s.Cols {
		if c := s.At(x, y); c.Filled {
			return c.Tag
		}
	}
	return tetris.NoTag
}

func TestBoardClearRowsCollapsesInOrder(t *testing.T) {
	b := tetris.NewBoard(10, 20)
	for y := range 20 {
		if y == 3 || y == 7 {
			fillRow(b, y)
			continue
		}
		fillRow(b, y, y%10)
	}
	assert.Equal(t, []int{3, 7}, b.FullRows())

	b.ClearRows([]int{7, 3})
	snap := b.Snapshot()

	for _, y := range []int{0, 1} {
		for x := range 10 {
			assert.False(t, snap.At(x, y).Filled, "row %d must be empty", y)
		}
	}

	moved := map[int]int{0: 2, 1: 3, 2: 4, 4: 5, 5: 6, 6: 7}
	for y := 8; y < 20; y++ {
		moved[y] = y
	}
	for from, to := range moved {
		assert.Equal(t, tetris.Tag(from+1), rowTag(snap, to), "old row %d should be at %d", from, to)
	}
	assert.Empty(t, b.FullRows())
}

func TestBoardClearRowsIgnoresDuplicatesAndOutOfRange(t *testing.T) {
	b := tetris.NewBoard(4, 5)
	fillRow(b, 4)
	fillRow(b, 3, 0)

	b.ClearRows([]int{4, 4, -1, 9})
	snap := b.Snapshot()

	assert.Equal(t, 5, len(snap.Cells))
	assert.Equal(t, tetris.Tag(4), rowTag(snap, 4))
	assert.Equal(t, 3, snap.Filled())
}

func TestBoardSnapshotIsCopy(t *testing.T) {
	b := tetris.NewBoard(4, 4)
	snap := b.Snapshot()
	b.Set(0, 0, tetris.Cell{Filled: true})

	assert.False(t, snap.At(0, 0).Filled)
	assert.False(t, snap.Equal(b.Snapshot()))
	assert.Equal(t, "#...\n....\n....\n....", b.Snapshot().String())
}
