package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

// GameOverModal shows the final score once the game ends. Its restart button
// is reported as play.ActionRestart on the following frame, so it can be
// merged with the keyboard in a play.MultiInput.
type GameOverModal struct {
	world   *loop.World
	clicked bool
	pending bool
}

func NewGameOverModal(world *loop.World) *GameOverModal {
	return &GameOverModal{world: world}
}

func (m *GameOverModal) Poll(engine *tetris.Engine) {
	m.pending = m.clicked
	m.clicked = false
}

func (m *GameOverModal) Pressed(a play.Action) bool {
	return m.pending && a == play.ActionRestart
}

// Item returns the modal's render function.
func (m *GameOverModal) Item() ImguiItem {
	return ImguiItem{
		Render: func() {
			engine := m.world.Engine()
			if !engine.GameOver() {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(250, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(220, 140), imgui.CondOnce)

			if !imgui.BeginV("Game Over", nil, imgui.WindowFlagsNoCollapse) {
				imgui.End()
				return
			}

			imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
			imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
			imgui.Text(fmt.Sprintf("Lines: %d", engine.Lines()))

			imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
			imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
			imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
			if imgui.Button("Restart") {
				m.clicked = true
			}
			imgui.PopStyleColor()
			imgui.PopStyleColor()
			imgui.PopStyleColor()

			imgui.End()
		},
	}
}
