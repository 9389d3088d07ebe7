package game

import (
	"image/color"

	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/game/types"
)

var (
	ColorRoad        = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColorGrass       = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	ColorRoadLine    = color.White
	ColorPlayer      = color.RGBA{0xff, 0x47, 0x57, 0xff}
	ColorWindow      = color.RGBA{0x33, 0x33, 0x33, 0xff}
	ColorHeadlight   = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorStripe      = color.White
	ColorEnemy       = color.RGBA{0x1e, 0x90, 0xff, 0xff}
	ColorCoin        = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	ColorCoinOutline = color.RGBA{0xb8, 0x86, 0x0b, 0xff}
	ColorCoinText    = color.White
)

// roadLineDash is the centerline dash pattern
var roadLineDash = []float64{constants.RoadLineDash, constants.RoadLineDash}

func drawBackground(s Surface) {
	s.SetFillColor(ColorRoad)
	s.FillRect(0, 0, constants.CanvasWidth, constants.CanvasHeight)

	s.SetFillColor(ColorGrass)
	s.FillRect(0, 0, constants.GrassWidth, constants.CanvasHeight)
	s.FillRect(constants.CanvasWidth-constants.GrassWidth, 0, constants.GrassWidth, constants.CanvasHeight)
}

func drawRoadLine(s Surface, offset float64) {
	s.SetStrokeColor(ColorRoadLine)
	s.SetLineDash(roadLineDash)
	s.SetLineWidth(constants.RoadLineWidth)
	x := constants.CanvasWidth / 2
	s.StrokeLine(x, -constants.RoadLineWrap+offset, x, constants.CanvasHeight)
	s.SetLineDash(nil)
}

func drawPlayer(s Surface, player *types.PlayerState) {
	x, y := player.Position.X, player.Position.Y

	// body
	s.SetFillColor(ColorPlayer)
	s.FillRoundRect(x, y, constants.PlayerWidth, constants.PlayerHeight, constants.PlayerCornerRadius)

	// windows
	s.SetFillColor(ColorWindow)
	s.FillRect(x+10, y+25, 30, 35)

	// headlights
	s.SetFillColor(ColorHeadlight)
	s.FillRect(x+5, y+5, 10, 5)
	s.FillRect(x+35, y+5, 10, 5)

	s.SetFillColor(ColorStripe)
	s.FillRect(x+22, y, 6, constants.PlayerHeight)
}

func drawEnemy(s Surface, enemy *types.Enemy) {
	x, y := enemy.Position.X, enemy.Position.Y

	s.SetFillColor(ColorEnemy)
	s.FillRoundRect(x, y, constants.EnemyWidth, constants.EnemyHeight, constants.EnemyCornerRadius)

	s.SetFillColor(ColorWindow)
	s.FillRect(x+10, y+15, 30, 25)
}

func drawCoin(s Surface, coin *types.Coin) {
	x, y := coin.Position.X, coin.Position.Y

	s.SetFillColor(ColorCoin)
	s.FillCircle(x, y, constants.CoinRadius)
	s.SetStrokeColor(ColorCoinOutline)
	s.SetLineWidth(2)
	s.StrokeCircle(x, y, constants.CoinRadius)

	s.SetFillColor(ColorCoinText)
	s.FillText("$", x, y)
}
