package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/palette"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

// hudLines summarises the engine as the HUD's text rows.
func hudLines(e *tetris.Engine, paused bool) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", e.Score()),
		fmt.Sprintf("Lines: %d", e.Lines()),
		fmt.Sprintf("Pieces: %d", e.Pieces()),
		fmt.Sprintf("Next: %s", e.Next()),
	}
	if paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// NewHUD shows the counters of the current game and how often each shape
// has been dealt.
func NewHUD(world *loop.World, pause *play.Pause) ImguiItem {
	return ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(220, 300), imgui.CondOnce)

			if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			engine := world.Engine()
			for _, line := range hudLines(engine, pause.On()) {
				imgui.Text(line)
			}
			imgui.Text(fmt.Sprintf("Game: %s", world.Game()))

			imgui.Separator()

			counts := engine.Counts()
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("ShapeCounts", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("Shape")
				imgui.TableSetupColumn("Dealt")
				imgui.TableHeadersRow()

				for _, shape := range tetris.Shapes {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.TextColored(shapeColor(shape), shape.String())
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", counts.Get(shape)))
				}

				imgui.EndTable()
			}

			imgui.End()
		},
	}
}

func shapeColor(s tetris.Shape) imgui.Vec4 {
	c := palette.Shapes[s]
	return imgui.NewVec4(c[0], c[1], c[2], c[3])
}
