package loop

import "time"

// Frame carries the timing of one scheduler pass.
type Frame struct {
	// Now is the monotonic timestamp of this pass.
	Now time.Duration
	// DeltaTime is the time since the previous pass, zero on the first.
	DeltaTime time.Duration
	Commands  *Commands
}

// Seconds returns DeltaTime as fractional seconds.
func (f *Frame) Seconds() float64 {
	return f.DeltaTime.Seconds()
}

func newFrame(now, dt time.Duration) *Frame {
	return &Frame{
		Now:       now,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}
