package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats[int]
	s.Finalize()
	assert.Zero(t, s.Avg)

	for _, v := range []int{4, 10, 1} {
		s.Add(v)
	}
	s.Finalize()
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 10, s.Max)
	assert.Equal(t, 5, s.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Games: 2, Seed: 3, Randomizer: "bag", MaxPieces: 50, FrameStep: 16 * time.Millisecond}
	r.Add(GameResult{Seed: 3, Lines: 12, Clears: 9, Pieces: 50, ClearSizes: [5]int{0, 7, 1, 1, 0}, PlayTime: time.Minute})
	r.Add(GameResult{Seed: 4, Lines: 2, Clears: 2, Pieces: 31, ClearSizes: [5]int{0, 2}, PlayTime: 20 * time.Second, ToppedOut: true})
	r.Finalize()

	assert.Equal(t, [5]int{0, 9, 1, 1, 0}, r.ClearSizes)
	assert.Equal(t, 40*time.Second, r.PlayTime.Avg)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "- **Lines:** avg 7, min 2, max 12")
	assert.Contains(t, out, "| 1 | 9 |")
	assert.Contains(t, out, "| 1 | 3 | 12 | 9 | 50 | 1m0s | piece limit |")
	assert.Contains(t, out, "| 2 | 4 | 2 | 2 | 31 | 20s | game over |")
}
