package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// PerformanceStats shows the frame time graph and per-system timings of a
// scheduler.
type PerformanceStats struct {
	Scheduler *loop.Scheduler
	history   *History
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		Scheduler: scheduler,
		history:   NewHistory(historyFrames),
	}
}

// Execute samples the frame delta. Register it on the scheduler whose
// frames should be plotted.
func (ps *PerformanceStats) Execute(frame *loop.Frame) {
	if frame.DeltaTime > 0 {
		ps.history.Push(frame.DeltaTime)
	}
}

// History returns the sampled frame times.
func (ps *PerformanceStats) History() *History {
	return ps.history
}

func (ps *PerformanceStats) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.Scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.history.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	values := ps.history.Values()
	imgui.PlotLinesFloatPtr("##frametime", &values[0], int32(len(values)))

	if imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatMicros(sys.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatMicros(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatMicros(sys.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatMicros(d time.Duration) string {
	return fmt.Sprintf("%.1f µs", float64(d)/float64(time.Microsecond))
}
