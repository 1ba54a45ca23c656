package loop

import "time"

// System is one stage of a frame. Systems keep their own state between
// frames and run in the order they were registered.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function into a System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// Ticker is anything driven by monotonic timestamps, such as a game engine.
type Ticker interface {
	Tick(now time.Duration)
}

// TickSystem forwards each frame's timestamp to Target.
type TickSystem struct {
	Target Ticker
}

func (s *TickSystem) Execute(frame *Frame) {
	s.Target.Tick(frame.Now)
}
