package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/redracer/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is short lived text that drifts up the screen and then
// removes itself from its parent.
type TextEffect struct {
	*BaseObject

	text   string
	x      float64
	y      float64
	color  color.Color
	scroll bool
	// ttl is the remaining lifetime in ticks
	ttl int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the horizontal center of the text.
	X float64
	// Y is the baseline of the text.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// Scroll is a boolean value indicating whether the text should drift up.
	Scroll bool
	// TTL is the lifetime in ticks. Zero lives forever.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		scroll:     opts.Scroll,
		ttl:        opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	if o.scroll {
		o.y--
	}
	if o.ttl > 0 {
		o.ttl--
		if o.ttl == 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove text effect from parent: %v", err)
			}
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, o.text)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-float64((bounds.Max.X-bounds.Min.X).Ceil())/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, f, op)
}
