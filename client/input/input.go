package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Tap is a mouse click or touch start in screen coordinates.
type Tap struct {
	X int
	Y int
}

// JustPressedTaps returns the taps that started this tick. A left click and
// every new touch each count as one tap.
func JustPressedTaps() []Tap {
	var taps []Tap
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, Tap{X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, Tap{X: x, Y: y})
	}
	return taps
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			// The button 0 might not be the A button.
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsLeftJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
}

func IsRightJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
}
