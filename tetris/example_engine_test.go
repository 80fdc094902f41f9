package tetris_test

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// ExampleEngine shows the driver's side of the engine: issue commands, then
// read back the query surface. Dropping any single piece onto an empty grid
// locks four cells and scores the lock bonus.
func ExampleEngine() {
	engine := tetris.NewEngine(tetris.NewSource(42))

	engine.MoveLeft()
	engine.HardDrop()

	grid := engine.Grid()
	fmt.Println("score:", engine.Score())
	fmt.Println("locked cells:", grid.Occupied())
	fmt.Println("pieces:", engine.Pieces())
	fmt.Println("game over:", engine.GameOver())
	// Output:
	// score: 10
	// locked cells: 4
	// pieces: 2
	// game over: false
}

// ExampleEngine_Update shows that gravity never catches up on missed
// intervals: one long frame drops the piece a single row.
func ExampleEngine_Update() {
	rules := tetris.DefaultRules()
	engine := tetris.NewEngine(tetris.NewSource(1), rules)

	engine.Update(rules.FallInterval * 10)

	fmt.Println(rules.SpawnY - engine.Active().Y)
	// Output: 1
}
