package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	NoteDuration = 90 * time.Millisecond
	NoteGap      = 20 * time.Millisecond
)

// scale is one octave of the major pentatonic starting at C5.
var scale = []float64{523.25, 587.33, 659.25, 783.99, 880.00}

// NoteFrequency returns the pitch of the i-th jingle note. Notes past the
// end of the scale repeat it an octave higher.
func NoteFrequency(i int) float64 {
	octave := i / len(scale)
	return scale[i%len(scale)] * math.Pow(2, float64(octave))
}

// Jingle builds the line-clear sound: one ascending sine note per cleared
// line, each followed by a short gap, scaled by volume in [0, 1].
func Jingle(sr beep.SampleRate, lines int, volume float64) (beep.Streamer, error) {
	if lines < 1 {
		lines = 1
	}
	notes := make([]beep.Streamer, 0, 2*lines)
	for i := range lines {
		tone, err := generators.SineTone(sr, NoteFrequency(i))
		if err != nil {
			return nil, fmt.Errorf("jingle note %d: %w", i, err)
		}
		notes = append(notes,
			beep.Take(sr.N(NoteDuration), tone),
			beep.Silence(sr.N(NoteGap)),
		)
	}
	return withVolume(beep.Seq(notes...), volume), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
