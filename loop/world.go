package loop

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/plus3/blockfall/tetris"
)

// World owns the engine of the game in progress. Drivers hold one World and
// pass it explicitly; restarting swaps in a new engine rather than resetting
// the old one.
type World struct {
	rules tetris.Rules
	seeds *rand.Rand

	engine     *tetris.Engine
	seed       uint64
	game       uuid.UUID
	generation int
}

// NewWorld starts the first game. The seed fixes the whole sequence of games
// played in this world: each game's engine seed is drawn from it.
func NewWorld(seed uint64, rules tetris.Rules) *World {
	w := &World{
		rules: rules,
		seeds: tetris.NewSource(seed),
	}
	w.Restart()
	return w
}

// Restart replaces the engine with a new game and returns it.
func (w *World) Restart() *tetris.Engine {
	w.seed = w.seeds.Uint64()
	w.game = uuid.New()
	w.engine = tetris.NewEngine(tetris.NewSource(w.seed), w.rules)
	w.generation++
	return w.engine
}

// Engine returns the engine of the current game.
func (w *World) Engine() *tetris.Engine {
	return w.engine
}

// Seed returns the seed the current engine was built from. Passing it to
// tetris.NewSource reproduces the game's piece sequence.
func (w *World) Seed() uint64 {
	return w.seed
}

// Game returns the identifier of the current game.
func (w *World) Game() uuid.UUID {
	return w.game
}

// Generation counts the games started in this world, starting at 1.
func (w *World) Generation() int {
	return w.generation
}

func (w *World) Rules() tetris.Rules {
	return w.rules
}
