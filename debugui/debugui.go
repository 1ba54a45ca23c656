// Package debugui provides Dear ImGui panels for inspecting a running game:
// engine state, board contents and per-system frame timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function drawn every frame while the
// overlay is visible.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming input this frame.
// Game input handling should skip events ImGui wants.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of its items to the end of the
// frame and refreshes the input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Visible    bool
}

// Add registers a render function.
func (i *ImguiSystem) Add(name string, render func()) {
	i.Items = append(i.Items, ImguiItem{Name: name, Render: render})
}

// Toggle flips overlay visibility.
func (i *ImguiSystem) Toggle() {
	i.Visible = !i.Visible
}

// Execute updates input state and queues all ImGui render functions.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	if !i.Visible {
		i.InputState = ImguiInputState{}
		return
	}
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
