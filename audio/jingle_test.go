package audio_test

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/plus3/blockfall/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (samples int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			peak = max(peak, frame[0], -frame[0])
		}
		samples += n
		if !ok {
			return samples, peak
		}
	}
}

func TestJingleLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	perNote := sr.N(audio.NoteDuration) + sr.N(audio.NoteGap)

	for _, lines := range []int{1, 2, 4} {
		s, err := audio.Jingle(sr, lines, 1)
		require.NoError(t, err)

		n, peak := drain(s)
		assert.Equal(t, lines*perNote, n, "lines=%d", lines)
		assert.Greater(t, peak, 0.5)
	}
}

func TestJingleMuted(t *testing.T) {
	s, err := audio.Jingle(beep.SampleRate(8000), 3, 0)
	require.NoError(t, err)

	_, peak := drain(s)
	assert.Zero(t, peak)
}

func TestNoteFrequencyAscends(t *testing.T) {
	prev := 0.0
	for i := range 12 {
		f := audio.NoteFrequency(i)
		assert.Greater(t, f, prev, "note %d", i)
		prev = f
	}
	assert.InDelta(t, 2*audio.NoteFrequency(0), audio.NoteFrequency(5), 1e-9)
}

func TestPlayerIgnoresPlayBeforeInit(t *testing.T) {
	p := audio.NewPlayer(1)
	assert.NotPanics(t, func() {
		p.PlayClear(2)
		p.Close()
	})
}
