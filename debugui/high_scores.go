package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/scores"
)

// scoreRow formats an entry as the table's cells.
func scoreRow(rank int, e scores.Entry) [5]string {
	return [5]string{
		fmt.Sprintf("%d", rank),
		fmt.Sprintf("%d", e.Score),
		fmt.Sprintf("%d", e.Lines),
		fmt.Sprintf("%d", e.Pieces),
		e.PlayedAt.Format("2006-01-02 15:04"),
	}
}

// NewHighScores lists the entries returned by load, best first.
func NewHighScores(load func() []scores.Entry) ImguiItem {
	return ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(440, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(380, 260), imgui.CondOnce)

			if !imgui.BeginV("High Scores", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}

			entries := load()
			if len(entries) == 0 {
				imgui.Text("No games recorded yet.")
				imgui.End()
				return
			}

			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("HighScoresTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
				for _, title := range [...]string{"#", "Score", "Lines", "Pieces", "Played"} {
					imgui.TableSetupColumn(title)
				}
				imgui.TableHeadersRow()

				for i, e := range entries {
					imgui.TableNextRow()
					for _, cell := range scoreRow(i+1, e) {
						imgui.TableNextColumn()
						imgui.Text(cell)
					}
				}

				imgui.EndTable()
			}

			imgui.End()
		},
	}
}
