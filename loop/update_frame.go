package loop

import "context"

type UpdateFrame struct {
	Context   context.Context
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(ctx context.Context, dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		Context:   ctx,
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
