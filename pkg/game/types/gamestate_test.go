package types

import (
	"testing"

	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/kinematic"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpace() *resolv.Space {
	return resolv.NewSpace(int(constants.CanvasWidth), int(constants.CanvasHeight), 20, 20)
}

func TestPlayerState_Shift(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		shift  func(p *PlayerState) bool
		wantX  float64
		wantOK bool
	}{
		{name: "left from center", startX: 175, shift: (*PlayerState).ShiftLeft, wantX: 95, wantOK: true},
		{name: "right from center", startX: 175, shift: (*PlayerState).ShiftRight, wantX: 255, wantOK: true},
		{name: "left from leftmost lane", startX: 95, shift: (*PlayerState).ShiftLeft, wantX: 95, wantOK: false},
		{name: "right from rightmost lane", startX: 255, shift: (*PlayerState).ShiftRight, wantX: 255, wantOK: false},
		{name: "left at min bound", startX: constants.PlayerMinX, shift: (*PlayerState).ShiftLeft, wantX: 60, wantOK: false},
		{name: "right at max bound", startX: constants.PlayerMaxX, shift: (*PlayerState).ShiftRight, wantX: 260, wantOK: false},
		{name: "right from min bound", startX: constants.PlayerMinX, shift: (*PlayerState).ShiftRight, wantX: 140, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerState()
			p.setX(tt.startX)
			ok := tt.shift(p)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantX, p.Position.X)
			assert.Equal(t, tt.wantX-PlayerCollisionMargin, p.Object.Position.X, "collision object should follow the player")
			assert.GreaterOrEqual(t, p.Position.X, constants.PlayerMinX)
			assert.LessOrEqual(t, p.Position.X, constants.PlayerMaxX)
		})
	}
}

func TestPlayerState_Center(t *testing.T) {
	p := NewPlayerState()
	assert.Equal(t, kinematic.Vector{X: 200, Y: 525}, p.Center())
}

func TestGameState_Reset(t *testing.T) {
	g := NewGameState(newTestSpace())
	g.Score = 120
	g.Speed = 6.2
	g.LineOffset = 33
	g.Player.ShiftRight()
	g.AddEnemy(NewEnemy(60, 100))
	g.AddEnemy(NewEnemy(140, 200))
	g.AddCoin(NewCoin(100, 100))

	g.Reset()

	assert.Equal(t, 0, g.Score)
	assert.Equal(t, constants.StartingSpeed, g.Speed)
	assert.Equal(t, 0.0, g.LineOffset)
	assert.Equal(t, constants.PlayerStartingX, g.Player.Position.X)
	assert.Empty(t, g.Enemies)
	assert.Empty(t, g.Coins)
}

func TestGameState_RemoveEnemies(t *testing.T) {
	g := NewGameState(newTestSpace())
	a := NewEnemy(60, 100)
	b := NewEnemy(140, 700)
	c := NewEnemy(220, 300)
	g.AddEnemy(a)
	g.AddEnemy(b)
	g.AddEnemy(c)

	g.RemoveEnemies(func(e *Enemy) bool { return !OffScreen(e.Position.Y) })

	require.Len(t, g.Enemies, 2)
	assert.Same(t, a, g.Enemies[0])
	assert.Same(t, c, g.Enemies[1])
}

func TestGameState_RemoveCoins(t *testing.T) {
	g := NewGameState(nil)
	a := NewCoin(60, 601)
	b := NewCoin(140, 600)
	g.AddCoin(a)
	g.AddCoin(b)

	g.RemoveCoins(func(c *Coin) bool { return !OffScreen(c.Position.Y) })

	require.Len(t, g.Coins, 1)
	assert.Same(t, b, g.Coins[0])
}

func TestEnemy_Advance(t *testing.T) {
	g := NewGameState(newTestSpace())
	e := NewEnemy(140, -100)
	g.AddEnemy(e)

	e.Advance(5.5)

	assert.Equal(t, -94.5, e.Position.Y)
	assert.Equal(t, -94.5, e.Object.Position.Y)
	assert.Equal(t, kinematic.Rect{X: 140, Y: -94.5, W: 50, H: 80}, e.Bounds())
}

func TestPlayerState_Sync(t *testing.T) {
	g := NewGameState(newTestSpace())
	g.Player.Position.X = 255

	g.Player.Sync()

	assert.Equal(t, float64(255-PlayerCollisionMargin), g.Player.Object.Position.X)
	assert.Equal(t, constants.PlayerY-PlayerCollisionMargin, g.Player.Object.Position.Y)

	enemy := NewEnemy(255, 470)
	g.AddEnemy(enemy)
	assert.True(t, g.Player.Object.SharesCells(enemy.Object))
}

func TestEnemy_Sync(t *testing.T) {
	e := NewEnemy(60, 100)
	e.Position.X = 220
	e.Sync()
	assert.Equal(t, 220.0, e.Object.Position.X)
	assert.Equal(t, 100.0, e.Object.Position.Y)
}
