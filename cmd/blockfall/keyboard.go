package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/play"
)

// keyNames are the key names accepted in the bindings block.
var keyNames = map[string]ebiten.Key{
	"Left":      ebiten.KeyArrowLeft,
	"Right":     ebiten.KeyArrowRight,
	"Up":        ebiten.KeyArrowUp,
	"Down":      ebiten.KeyArrowDown,
	"Space":     ebiten.KeySpace,
	"Enter":     ebiten.KeyEnter,
	"Escape":    ebiten.KeyEscape,
	"Tab":       ebiten.KeyTab,
	"Backspace": ebiten.KeyBackspace,
	"Shift":     ebiten.KeyShift,
	"Control":   ebiten.KeyControl,
	"A":         ebiten.KeyA,
	"B":         ebiten.KeyB,
	"C":         ebiten.KeyC,
	"D":         ebiten.KeyD,
	"E":         ebiten.KeyE,
	"F":         ebiten.KeyF,
	"G":         ebiten.KeyG,
	"H":         ebiten.KeyH,
	"I":         ebiten.KeyI,
	"J":         ebiten.KeyJ,
	"K":         ebiten.KeyK,
	"L":         ebiten.KeyL,
	"M":         ebiten.KeyM,
	"N":         ebiten.KeyN,
	"O":         ebiten.KeyO,
	"P":         ebiten.KeyP,
	"Q":         ebiten.KeyQ,
	"R":         ebiten.KeyR,
	"S":         ebiten.KeyS,
	"T":         ebiten.KeyT,
	"U":         ebiten.KeyU,
	"V":         ebiten.KeyV,
	"W":         ebiten.KeyW,
	"X":         ebiten.KeyX,
	"Y":         ebiten.KeyY,
	"Z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

func lookupKey(name string) (ebiten.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// keyboard reports bound keys that went down this tick. It stays quiet while
// an ImGui widget has keyboard focus.
type keyboard struct {
	bindings play.Bindings[ebiten.Key]
	ui       *debugui.ImguiInputState
}

func (k *keyboard) Pressed(a play.Action) bool {
	if k.ui != nil && k.ui.WantCaptureKeyboard {
		return false
	}
	return k.bindings.Pressed(a, inpututil.IsKeyJustPressed)
}
