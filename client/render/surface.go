// Package render draws engine frames onto ebiten images.
package render

import (
	"image"
	"image/color"

	"github.com/cbodonnell/redracer/pkg/game"
	pkgrender "github.com/cbodonnell/redracer/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenSurface implements game.Surface on top of an ebiten image.
type EbitenSurface struct {
	dst  *ebiten.Image
	face font.Face

	fill      color.Color
	stroke    color.Color
	lineWidth float64
	dash      []float64
}

var _ game.Surface = &EbitenSurface{}

// NewEbitenSurface returns a surface drawing to dst. Text is drawn with face.
func NewEbitenSurface(dst *ebiten.Image, face font.Face) *EbitenSurface {
	return &EbitenSurface{
		dst:       dst,
		face:      face,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
	}
}

func (s *EbitenSurface) SetFillColor(clr color.Color) {
	s.fill = clr
}

func (s *EbitenSurface) SetStrokeColor(clr color.Color) {
	s.stroke = clr
}

func (s *EbitenSurface) SetLineWidth(width float64) {
	s.lineWidth = width
}

func (s *EbitenSurface) SetLineDash(pattern []float64) {
	s.dash = append([]float64(nil), pattern...)
}

func (s *EbitenSurface) FillRect(x, y, width, height float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(width), float32(height), s.fill, false)
}

func (s *EbitenSurface) FillRoundRect(x, y, width, height, radius float64) {
	path := roundRectPath(x, y, width, height, radius)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, s.fill)
}

func (s *EbitenSurface) StrokeRoundRect(x, y, width, height, radius float64) {
	path := roundRectPath(x, y, width, height, radius)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(s.lineWidth),
		LineJoin: vector.LineJoinRound,
	})
	s.drawTriangles(vs, is, s.stroke)
}

func (s *EbitenSurface) FillCircle(cx, cy, radius float64) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), s.fill, true)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, radius float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(radius), float32(s.lineWidth), s.stroke, true)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64) {
	for _, seg := range pkgrender.DashSegments(x0, y0, x1, y1, s.dash) {
		vector.StrokeLine(s.dst, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), float32(s.lineWidth), s.stroke, false)
	}
}

// FillText draws text centered on (x, y).
func (s *EbitenSurface) FillText(t string, x, y float64) {
	if s.face == nil {
		return
	}
	bounds, _ := font.BoundString(s.face, t)
	w := float64((bounds.Max.X - bounds.Min.X).Ceil())
	top, bottom := float64(bounds.Min.Y.Floor()), float64(bounds.Max.Y.Ceil())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-w/2-float64(bounds.Min.X.Floor()), y-(top+bottom)/2)
	op.ColorScale.ScaleWithColor(s.fill)
	text.DrawWithOptions(s.dst, t, s.face, op)
}

func (s *EbitenSurface) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func roundRectPath(x, y, width, height, radius float64) *vector.Path {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+width), float32(y+height)
	r := float32(radius)

	path := &vector.Path{}
	path.MoveTo(x0+r, y0)
	path.ArcTo(x1, y0, x1, y1, r)
	path.ArcTo(x1, y1, x0, y1, r)
	path.ArcTo(x0, y1, x0, y0, r)
	path.ArcTo(x0, y0, x1, y0, r)
	path.Close()
	return path
}
