package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/blockfall/loop"
)

// frameHistory is a ring of frame times in milliseconds.
type frameHistory struct {
	samples []float32
	index   int
	filled  bool
}

func newFrameHistory(size int) *frameHistory {
	return &frameHistory{samples: make([]float32, size)}
}

func (h *frameHistory) add(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.index == 0 {
		h.filled = true
	}
}

// ordered returns the samples oldest first.
func (h *frameHistory) ordered() []float32 {
	if !h.filled {
		return h.samples[:h.index]
	}
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.index:])
	copy(out[n:], h.samples[:h.index])
	return out
}

func (h *frameHistory) average() float32 {
	samples := h.ordered()
	if len(samples) == 0 {
		return 0
	}
	var sum float32
	for _, s := range samples {
		sum += s
	}
	return sum / float32(len(samples))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// NewPerformanceStats plots the last historyFrames frame times and lists the
// scheduler's per-system timings.
func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) ImguiItem {
	history := newFrameHistory(historyFrames)
	timer := NewFrameTimer()

	return ImguiItem{
		Render: func() {
			history.add(timer.GetDeltaTime() * 1000.0)

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(420, 320), imgui.CondOnce)

			if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			stats := scheduler.GetStats()
			avg := history.average()
			imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
			if avg > 0 {
				imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
			}

			if samples := history.ordered(); len(samples) > 0 {
				if implot.BeginPlotV("Frame Time", imgui.NewVec2(-1, 150), 0) {
					implot.SetupAxesV("Frame", "ms", 0, implot.AxisFlagsAutoFit)
					implot.PlotLineFloatPtrInt("Frame", &samples[0], int32(len(samples)))
					implot.EndPlot()
				}
			}

			if imgui.TreeNodeStr("Systems") {
				const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
				if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
					imgui.TableSetupColumn("System")
					imgui.TableSetupColumn("Avg")
					imgui.TableSetupColumn("Max")
					imgui.TableSetupColumn("Last")
					imgui.TableHeadersRow()

					for _, sys := range stats.Systems {
						imgui.TableNextRow()
						imgui.TableNextColumn()
						imgui.Text(sys.Name)
						imgui.TableNextColumn()
						imgui.Text(sys.AvgDuration.String())
						imgui.TableNextColumn()
						imgui.Text(sys.MaxDuration.String())
						imgui.TableNextColumn()
						imgui.Text(sys.LastDuration.String())
					}

					imgui.EndTable()
				}
				imgui.TreePop()
			}

			imgui.End()
		},
	}
}
