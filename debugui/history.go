package debugui

import "time"

// History is a fixed-size ring of frame times in milliseconds, laid out for
// ImGui's PlotLines.
type History struct {
	values []float32
	next   int
	filled int
}

// NewHistory creates a ring holding the last n samples.
func NewHistory(n int) *History {
	return &History{values: make([]float32, max(1, n))}
}

// Push records one frame duration.
func (h *History) Push(d time.Duration) {
	h.values[h.next] = float32(d.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.values)
	h.filled = min(h.filled+1, len(h.values))
}

// Average returns the mean of the recorded samples in milliseconds.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values {
		sum += v
	}
	return sum / float32(h.filled)
}

// Values returns the backing ring in storage order.
func (h *History) Values() []float32 {
	return h.values
}
