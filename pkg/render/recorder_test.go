package render_test

import (
	"image/color"
	"testing"

	"github.com/cbodonnell/redracer/pkg/game"
	"github.com/cbodonnell/redracer/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ game.Surface = &render.Recorder{}

func TestRecorder_recordsStyle(t *testing.T) {
	r := render.NewRecorder()
	red := color.RGBA{255, 0, 0, 255}

	r.SetFillColor(red)
	r.FillRect(1, 2, 3, 4)
	r.SetStrokeColor(color.White)
	r.SetLineWidth(4)
	r.SetLineDash([]float64{20, 20})
	r.StrokeLine(200, -40, 200, 600)
	r.SetLineDash(nil)
	r.StrokeLine(0, 0, 1, 1)
	r.FillText("$", 10, 20)

	require.Len(t, r.Ops, 4)
	assert.Equal(t, render.OpFillRect, r.Ops[0].Kind)
	assert.Equal(t, []float64{1, 2, 3, 4}, r.Ops[0].Args)
	assert.Equal(t, red, r.Ops[0].Fill)

	lines := r.Filter(render.OpStrokeLine)
	require.Len(t, lines, 2)
	assert.Equal(t, []float64{20, 20}, lines[0].Dash)
	assert.Equal(t, 4.0, lines[0].LineWidth)
	assert.Empty(t, lines[1].Dash)

	assert.Equal(t, "$", r.Ops[3].Text)
	assert.Equal(t, 1, r.Count(render.OpFillText))

	r.Reset()
	assert.Empty(t, r.Ops)
}
