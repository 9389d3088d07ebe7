package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/redracer/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	hudMarginX = 10
	hudMarginY = 30
)

// ScoreObject draws the live score in the top left corner.
type ScoreObject struct {
	*BaseObject

	score func() int
}

func NewScoreObject(id string, score func() int) *ScoreObject {
	return &ScoreObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: 10}),
		score:      score,
	}
}

func (o *ScoreObject) Label() string {
	return fmt.Sprintf("Coins: %d", o.score())
}

func (o *ScoreObject) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudMarginX, hudMarginY)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, o.Label(), fonts.TTFNormalFont, op)
}
