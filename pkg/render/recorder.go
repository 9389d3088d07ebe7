// Package render holds Surface implementations that do not need a window.
package render

import (
	"image/color"
)

type OpKind string

const (
	OpFillRect        OpKind = "fillRect"
	OpFillRoundRect   OpKind = "fillRoundRect"
	OpStrokeRoundRect OpKind = "strokeRoundRect"
	OpFillCircle      OpKind = "fillCircle"
	OpStrokeCircle    OpKind = "strokeCircle"
	OpStrokeLine      OpKind = "strokeLine"
	OpFillText        OpKind = "fillText"
)

// Op is one recorded draw call together with the style in effect when it
// was issued.
type Op struct {
	Kind      OpKind
	Args      []float64
	Text      string
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
	Dash      []float64
}

// Recorder is a Surface that records draw calls instead of drawing them.
type Recorder struct {
	Ops []Op

	fill      color.Color
	stroke    color.Color
	lineWidth float64
	dash      []float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

// Reset drops recorded ops but keeps the current style.
func (r *Recorder) Reset() {
	r.Ops = nil
}

// Filter returns the recorded ops of the given kind in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Count(kind OpKind) int {
	return len(r.Filter(kind))
}

func (r *Recorder) SetFillColor(clr color.Color) {
	r.fill = clr
}

func (r *Recorder) SetStrokeColor(clr color.Color) {
	r.stroke = clr
}

func (r *Recorder) SetLineWidth(width float64) {
	r.lineWidth = width
}

func (r *Recorder) SetLineDash(pattern []float64) {
	r.dash = append([]float64(nil), pattern...)
}

func (r *Recorder) FillRect(x, y, width, height float64) {
	r.record(OpFillRect, "", x, y, width, height)
}

func (r *Recorder) FillRoundRect(x, y, width, height, radius float64) {
	r.record(OpFillRoundRect, "", x, y, width, height, radius)
}

func (r *Recorder) StrokeRoundRect(x, y, width, height, radius float64) {
	r.record(OpStrokeRoundRect, "", x, y, width, height, radius)
}

func (r *Recorder) FillCircle(cx, cy, radius float64) {
	r.record(OpFillCircle, "", cx, cy, radius)
}

func (r *Recorder) StrokeCircle(cx, cy, radius float64) {
	r.record(OpStrokeCircle, "", cx, cy, radius)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	r.record(OpStrokeLine, "", x0, y0, x1, y1)
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.record(OpFillText, text, x, y)
}

func (r *Recorder) record(kind OpKind, text string, args ...float64) {
	r.Ops = append(r.Ops, Op{
		Kind:      kind,
		Args:      args,
		Text:      text,
		Fill:      r.fill,
		Stroke:    r.stroke,
		LineWidth: r.lineWidth,
		Dash:      r.dash,
	})
}
