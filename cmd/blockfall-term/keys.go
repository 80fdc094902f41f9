package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/tetris"
)

// termKey identifies a key as tcell reports it. Rune is only set for KeyRune
// and is folded to lower case.
type termKey struct {
	Key  tcell.Key
	Rune rune
}

var specialKeys = map[string]tcell.Key{
	"Left":      tcell.KeyLeft,
	"Right":     tcell.KeyRight,
	"Up":        tcell.KeyUp,
	"Down":      tcell.KeyDown,
	"Enter":     tcell.KeyEnter,
	"Escape":    tcell.KeyEscape,
	"Tab":       tcell.KeyTab,
	"Backspace": tcell.KeyBackspace2,
}

// lookupKey resolves a configured key name. Single characters match the rune
// ignoring case.
func lookupKey(name string) (termKey, bool) {
	if k, ok := specialKeys[name]; ok {
		return termKey{Key: k}, true
	}
	if name == "Space" {
		return termKey{Key: tcell.KeyRune, Rune: ' '}, true
	}
	if r := []rune(name); len(r) == 1 && (unicode.IsLetter(r[0]) || unicode.IsDigit(r[0])) {
		return termKey{Key: tcell.KeyRune, Rune: unicode.ToLower(r[0])}, true
	}
	return termKey{}, false
}

func keyOf(ev *tcell.EventKey) termKey {
	if ev.Key() == tcell.KeyRune {
		return termKey{Key: tcell.KeyRune, Rune: unicode.ToLower(ev.Rune())}
	}
	return termKey{Key: ev.Key()}
}

// termInput buffers the keys pressed between two frames.
type termInput struct {
	bindings play.Bindings[termKey]
	pending  map[termKey]bool
	current  map[termKey]bool
}

func newTermInput(bindings play.Bindings[termKey]) *termInput {
	return &termInput{
		bindings: bindings,
		pending:  make(map[termKey]bool),
		current:  make(map[termKey]bool),
	}
}

// Feed records a key event for the next frame. It reports whether the key
// is bound to quit.
func (in *termInput) Feed(ev *tcell.EventKey) bool {
	k := keyOf(ev)
	in.pending[k] = true
	return ev.Key() == tcell.KeyCtrlC || in.bindings.Pressed(play.ActionQuit, func(b termKey) bool { return b == k })
}

func (in *termInput) Poll(engine *tetris.Engine) {
	clear(in.current)
	in.current, in.pending = in.pending, in.current
}

func (in *termInput) Pressed(a play.Action) bool {
	return in.bindings.Pressed(a, func(k termKey) bool { return in.current[k] })
}
