package types

import (
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Enemy is an oncoming car.
type Enemy struct {
	ID       uuid.UUID        `json:"id"`
	Position kinematic.Vector `json:"position"`
	Object   *resolv.Object   `json:"-"`
}

func NewEnemy(x, y float64) *Enemy {
	return &Enemy{
		ID:       uuid.New(),
		Position: kinematic.Vector{X: x, Y: y},
		Object:   resolv.NewObject(x, y, constants.EnemyWidth, constants.EnemyHeight, CollisionSpaceTagEnemy),
	}
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() kinematic.Rect {
	return kinematic.NewRect(e.Position, constants.EnemyWidth, constants.EnemyHeight)
}

// Advance moves the enemy dy units down the road.
func (e *Enemy) Advance(dy float64) {
	e.Position = e.Position.Add(kinematic.Vector{Y: dy})
	e.Sync()
}

// Sync moves the collision object to match Position.
func (e *Enemy) Sync() {
	if e.Object == nil {
		return
	}
	e.Object.Position.X = e.Position.X
	e.Object.Position.Y = e.Position.Y
	e.Object.Update()
}

// Coin is a collectible. Its position is the center of the coin.
type Coin struct {
	ID       uuid.UUID        `json:"id"`
	Position kinematic.Vector `json:"position"`
}

func NewCoin(x, y float64) *Coin {
	return &Coin{
		ID:       uuid.New(),
		Position: kinematic.Vector{X: x, Y: y},
	}
}

// Advance moves the coin dy units down the road.
func (c *Coin) Advance(dy float64) {
	c.Position = c.Position.Add(kinematic.Vector{Y: dy})
}

// OffScreen reports whether y has passed the bottom edge of the playfield.
func OffScreen(y float64) bool {
	return y > constants.CanvasHeight
}
