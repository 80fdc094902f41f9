package loop

// Commands buffers operations that must not happen while systems are still
// reading the current engine. They are applied at the end of the frame.
type Commands struct {
	restart bool
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function to run after every system has executed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Restart queues replacing the world's engine with a fresh game. Several
// requests in one frame start a single new game.
func (c *Commands) Restart() {
	c.restart = true
}

// Flush applies the queued restart, if any, then runs deferred functions in
// the order they were queued, and resets the buffer.
func (c *Commands) Flush(world *World) {
	if c.restart {
		world.Restart()
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.restart = false
	c.defers = c.defers[:0]
}
