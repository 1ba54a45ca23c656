package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// EngineInspector shows the engine phase, pieces, counters and a live map
// of the board, with controls for driving the engine by hand.
type EngineInspector struct {
	Engine *tetris.Engine
	// Restart is called by the Restart button; it defaults to Engine.Start.
	Restart func()
}

func NewEngineInspector(engine *tetris.Engine) *EngineInspector {
	return &EngineInspector{Engine: engine}
}

func (ei *EngineInspector) Render() {
	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	e := ei.Engine

	imgui.Text(fmt.Sprintf("State: %s", e.State()))
	imgui.Text(fmt.Sprintf("Now: %s", e.Now()))
	if due, ok := e.Due(); ok {
		imgui.Text(fmt.Sprintf("Next transition: %s", due))
	}
	imgui.Text(PieceLabel("Current", e.Current))
	imgui.Text(PieceLabel("Next", e.Next))

	soft := e.SoftDrop()
	if imgui.Checkbox("Soft drop", &soft) {
		e.SetSoftDrop(soft)
	}

	if imgui.Button("Restart") {
		if ei.Restart != nil {
			ei.Restart()
		} else {
			e.Start()
		}
	}
	imgui.SameLine()
	if imgui.Button("Rotate") {
		e.Rotate()
	}
	imgui.SameLine()
	if imgui.Button("Hard drop") {
		e.HardDrop()
	}

	imgui.Separator()
	if imgui.TreeNodeStr("Counters") {
		stats := e.Stats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("EngineCounters", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Counter")
			imgui.TableSetupColumn("Value")
			imgui.TableHeadersRow()
			for _, row := range [][2]string{
				{"Pieces spawned", fmt.Sprint(stats.PiecesSpawned)},
				{"Pieces locked", fmt.Sprint(stats.PiecesLocked)},
				{"Lines cleared", fmt.Sprint(stats.LinesCleared)},
				{"Clears", fmt.Sprint(stats.Clears)},
			} {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row[0])
				imgui.TableNextColumn()
				imgui.Text(row[1])
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		ei.renderBoard()
		imgui.TreePop()
	}

	imgui.End()
}

func (ei *EngineInspector) renderBoard() {
	const cell = 8
	snap := ei.Engine.Board()
	cur, hasCur := ei.Engine.Current()
	var active map[[2]int]bool
	if hasCur {
		active = make(map[[2]int]bool, 4)
		for x, y := range cur.Cells() {
			active[[2]int{x, y}] = true
		}
	}

	drawList := imgui.WindowDrawList()
	pos := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(1, 1, 1, 0.05))
	locked := imgui.ColorU32Vec4(imgui.NewVec4(0.96, 0.45, 0.71, 0.9))
	falling := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.9))

	for y := range snap.Rows {
		for x := range snap.Cols {
			c := empty
			switch {
			case active[[2]int{x, y}]:
				c = falling
			case snap.At(x, y).Filled:
				c = locked
			}
			x0 := pos.X + float32(x*cell)
			y0 := pos.Y + float32(y*cell)
			drawList.AddRectFilled(imgui.NewVec2(x0, y0), imgui.NewVec2(x0+cell-1, y0+cell-1), c)
		}
	}
	imgui.Dummy(imgui.NewVec2(float32(snap.Cols*cell), float32(snap.Rows*cell)))
}

// PieceLabel formats a piece accessor result for display.
func PieceLabel(name string, get func() (tetris.Piece, bool)) string {
	p, ok := get()
	if !ok {
		return name + ": none"
	}
	return fmt.Sprintf("%s: %s at (%d, %d) tag %d", name, p.Kind, p.X, p.Y, p.Tag)
}
