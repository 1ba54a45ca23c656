package loop_test

import (
	"testing"

	"github.com/plus3/blockfall/loop"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	scheduler := loop.NewScheduler()
	var got []int
	var queued int
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		frame.Commands.Defer(func() {
			got = append(got, 1)
			frame.Commands.Defer(func() { got = append(got, 3) })
		})
		frame.Commands.Defer(func() { got = append(got, 2) })
		queued = frame.Commands.Len()
	}))

	scheduler.Once(0)

	assert.Equal(t, 2, queued)
	assert.Equal(t, []int{1, 2, 3}, got, "functions deferred during a flush run in the same flush")
}
