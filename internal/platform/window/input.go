package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/drop/internal/core"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	quitKeys  = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// pollInput fills frame from the keyboard, mouse and touch screen.
// It reports whether a quit key went down this frame.
func pollInput(frame *core.InputFrame, viewH float64) (quit bool) {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}

	if anyPressed(leftKeys) {
		frame.Hold(core.ActionMoveLeft)
	}
	if anyPressed(rightKeys) {
		frame.Hold(core.ActionMoveRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Pointer = screenToWorld(x, y, viewH)
	} else if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		frame.Pointer = screenToWorld(x, y, viewH)
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// screenToWorld maps a pointer position in window pixels (origin top-left)
// to a pressed pointer in world units (origin bottom-left).
func screenToWorld(x, y int, viewH float64) core.Pointer {
	return core.Pointer{Pressed: true, X: float64(x), Y: viewH - float64(y)}
}

// spriteOrigin returns the top-left pixel at which to draw r.
func spriteOrigin(r core.Rect, viewH float64) (float64, float64) {
	return r.X, viewH - r.Y - r.H
}
