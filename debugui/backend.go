package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the Ebiten Dear ImGui backend.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the Ebiten window through the ImGui backend and
// disables imgui.ini persistence.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}
