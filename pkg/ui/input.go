package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is everything a screen sees for one tick
type Input struct {
	DT      float64 // seconds since the last tick
	Enabled bool    // false while the screen is fading out
	Layout  Layout

	Keys []ebiten.Key // keys pressed this tick

	Clicked          bool
	CursorX, CursorY float64
}

// ReadInput samples ebiten's input state. Mouse clicks and touches are
// reported the same way.
func ReadInput(dt float64, enabled bool, layout Layout) Input {
	in := Input{
		DT:      dt,
		Enabled: enabled,
		Layout:  layout,
		Keys:    inpututil.AppendJustPressedKeys(nil),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Clicked = true
		in.CursorX, in.CursorY = float64(x), float64(y)
	}
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		in.Clicked = true
		in.CursorX, in.CursorY = float64(x), float64(y)
	}

	return in
}

// Pressed reports whether any of keys was pressed this tick. A disabled
// input never reports a press.
func (in Input) Pressed(keys ...ebiten.Key) bool {
	if !in.Enabled {
		return false
	}
	for _, k := range keys {
		if slices.Contains(in.Keys, k) {
			return true
		}
	}
	return false
}

// ClickedIn reports whether the player clicked inside r this tick
func (in Input) ClickedIn(r Rect) bool {
	return in.Enabled && in.Clicked && r.Contains(in.CursorX, in.CursorY)
}
