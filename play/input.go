package play

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// Input reports which actions were triggered this frame. Implementations are
// edge triggered: a held key reports true on the frame it went down only.
type Input interface {
	Pressed(a Action) bool
}

// Poller is implemented by inputs that need to look at the game once per
// frame before being queried.
type Poller interface {
	Poll(engine *tetris.Engine)
}

// MultiInput merges several inputs; an action is pressed if any input presses it.
type MultiInput []Input

func (m MultiInput) Pressed(a Action) bool {
	for _, in := range m {
		if in.Pressed(a) {
			return true
		}
	}
	return false
}

func (m MultiInput) Poll(engine *tetris.Engine) {
	for _, in := range m {
		if p, ok := in.(Poller); ok {
			p.Poll(engine)
		}
	}
}

// Bindings maps actions to the device keys that trigger them.
type Bindings[K comparable] map[Action][]K

// Pressed reports whether any key bound to a satisfies pressed.
func (b Bindings[K]) Pressed(a Action, pressed func(K) bool) bool {
	for _, k := range b[a] {
		if pressed(k) {
			return true
		}
	}
	return false
}

// ResolveBindings turns configured key names into device keys using lookup.
func ResolveBindings[K comparable](names map[Action][]string, lookup func(string) (K, bool)) (Bindings[K], error) {
	bindings := make(Bindings[K], len(names))
	for action, keys := range names {
		for _, name := range keys {
			key, ok := lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown key %q bound to %s", name, action)
			}
			bindings[action] = append(bindings[action], key)
		}
	}
	return bindings, nil
}
