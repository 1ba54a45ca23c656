package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) tetris.Shape {
	t.Helper()
	s, err := tetris.ParseShape(rows...)
	require.NoError(t, err)
	return s
}

func TestBaseShapesHaveFourCells(t *testing.T) {
	for _, k := range tetris.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			count := 0
			for range tetris.BaseShape(k).Cells() {
				count++
			}
			assert.Equal(t, 4, count)
		})
	}
}

func TestBaseShapeReturnsCopy(t *testing.T) {
	s := tetris.BaseShape(tetris.KindT)
	s[0][0] = true

	assert.False(t, tetris.BaseShape(tetris.KindT)[0][0])
}

func TestRotateClockwiseO(t *testing.T) {
	o := tetris.BaseShape(tetris.KindO)
	assert.True(t, o.RotateClockwise().Equal(o))
}

func TestRotateClockwiseFullCycle(t *testing.T) {
	for _, k := range tetris.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			base := tetris.BaseShape(k)
			s := base
			for range 4 {
				s = s.RotateClockwise()
			}
			assert.True(t, s.Equal(base), "got\n%s\nwant\n%s", s, base)
		})
	}
}

func TestRotateClockwiseT(t *testing.T) {
	right := tetris.BaseShape(tetris.KindT).RotateClockwise()
	assert.True(t, right.Equal(mustParse(t,
		".#.",
		".##",
		".#.",
	)), "got\n%s", right)

	down := right.RotateClockwise()
	assert.True(t, down.Equal(mustParse(t,
		"...",
		"###",
		".#.",
	)), "got\n%s", down)
}

func TestRotateClockwiseNonSquare(t *testing.T) {
	s := mustParse(t,
		"#..",
		"###",
	)
	rotated := s.RotateClockwise()

	assert.Equal(t, 3, rotated.Height())
	assert.Equal(t, 2, rotated.Width())
	assert.True(t, rotated.Equal(mustParse(t,
		"##",
		"#.",
		"#.",
	)), "got\n%s", rotated)
	assert.True(t, s.Equal(mustParse(t, "#..", "###")), "source must not change")
}

func TestRotateI(t *testing.T) {
	vertical := tetris.BaseShape(tetris.KindI).RotateClockwise()
	assert.True(t, vertical.Equal(mustParse(t,
		"..#.",
		"..#.",
		"..#.",
		"..#.",
	)), "got\n%s", vertical)
}

func TestLeadingEmptyRows(t *testing.T) {
	tests := []struct {
		name  string
		shape tetris.Shape
		want  int
	}{
		{"I", tetris.BaseShape(tetris.KindI), 1},
		{"O", tetris.BaseShape(tetris.KindO), 0},
		{"T", tetris.BaseShape(tetris.KindT), 0},
		{"T down", tetris.BaseShape(tetris.KindT).RotateClockwise().RotateClockwise(), 1},
		{"empty", mustParse(t, "..", ".."), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.LeadingEmptyRows())
		})
	}
}

func TestShapeBounds(t *testing.T) {
	minX, minY, maxX, maxY, ok := tetris.BaseShape(tetris.KindI).Bounds()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 3, 1}, []int{minX, minY, maxX, maxY})

	minX, minY, maxX, maxY, ok = tetris.BaseShape(tetris.KindI).RotateClockwise().Bounds()
	require.True(t, ok)
	assert.Equal(t, []int{2, 0, 2, 3}, []int{minX, minY, maxX, maxY})

	_, _, _, _, ok = mustParse(t, "..").Bounds()
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	k, err := tetris.ParseKind("t")
	require.NoError(t, err)
	assert.Equal(t, tetris.KindT, k)

	_, err = tetris.ParseKind("X")
	assert.Error(t, err)

	assert.Equal(t, "Kind(9)", tetris.Kind(9).String())
}

func TestParseShapeRejectsRaggedRows(t *testing.T) {
	_, err := tetris.ParseShape("##", "#")
	assert.Error(t, err)

	_, err = tetris.ParseShape("#x")
	assert.Error(t, err)
}
