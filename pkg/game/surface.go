package game

import "image/color"

// Surface is the 2D drawing target the engine renders each tick onto.
// Coordinates are playfield units on a 400x600 canvas.
type Surface interface {
	SetFillColor(clr color.Color)
	SetStrokeColor(clr color.Color)
	SetLineWidth(width float64)
	// SetLineDash sets alternating dash and gap lengths for StrokeLine.
	// An empty pattern draws solid lines.
	SetLineDash(pattern []float64)

	FillRect(x, y, width, height float64)
	FillRoundRect(x, y, width, height, radius float64)
	StrokeRoundRect(x, y, width, height, radius float64)
	FillCircle(cx, cy, radius float64)
	StrokeCircle(cx, cy, radius float64)
	StrokeLine(x0, y0, x1, y1 float64)
	// FillText draws text centered on (x, y).
	FillText(text string, x, y float64)
}

// Scheduler runs the next tick once the presentation layer is ready for a
// new frame.
type Scheduler interface {
	RequestTick(tick func())
}

// RandomSource returns uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

// SessionListener is told the final score when a session ends.
type SessionListener interface {
	OnSessionEnd(score int)
}

// SessionListenerFunc adapts a function to a SessionListener.
type SessionListenerFunc func(score int)

func (f SessionListenerFunc) OnSessionEnd(score int) {
	f(score)
}
