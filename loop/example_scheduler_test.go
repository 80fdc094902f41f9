package loop_test

import (
	"context"
	"fmt"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type DropEverySecond struct {
	elapsed float64
}

func (s *DropEverySecond) Execute(frame *loop.UpdateFrame) {
	s.elapsed += frame.DeltaTime
	if s.elapsed >= 1 {
		s.elapsed = 0
		frame.World.Engine().HardDrop()
	}
}

// ExampleScheduler demonstrates a frame loop around the engine. Systems run
// in registration order every frame; deferred commands run after the last
// system, so the printout sees the state the frame produced.
func ExampleScheduler() {
	world := loop.NewWorld(2024, tetris.DefaultRules())
	scheduler := loop.NewScheduler(context.Background(), world)
	scheduler.Register(&DropEverySecond{})

	for i := 0; i < 4; i++ {
		scheduler.Once(0.5)
	}

	engine := world.Engine()
	fmt.Println("pieces:", engine.Pieces())
	fmt.Println("score:", engine.Score())
	fmt.Println("frames:", scheduler.GetStats().Frames)
	// Output:
	// pieces: 3
	// score: 20
	// frames: 4
}
