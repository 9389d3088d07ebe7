package game

import (
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/game/types"
	"github.com/cbodonnell/redracer/pkg/kinematic"
	"github.com/solarlune/resolv"
)

const (
	// CollisionCellSize is the resolv cell edge length in playfield units
	CollisionCellSize = 20
)

// NewCollisionSpace returns a resolv space covering the playfield. Objects
// outside of it (like freshly spawned enemies above the top edge) touch no
// cells and are never candidates.
func NewCollisionSpace() *resolv.Space {
	return resolv.NewSpace(int(constants.CanvasWidth), int(constants.CanvasHeight), CollisionCellSize, CollisionCellSize)
}

// collidesWithPlayer runs the cheap shared cell check first and confirms
// with the exact box test.
func collidesWithPlayer(player *types.PlayerState, enemy *types.Enemy) bool {
	if player.Object != nil && enemy.Object != nil && player.Object.Space != nil {
		if !player.Object.SharesCells(enemy.Object) {
			return false
		}
	}
	return player.Bounds().Overlaps(enemy.Bounds())
}

// isCollected reports whether the coin's center is strictly within pickup
// range of the player's center.
func isCollected(playerCenter kinematic.Vector, coin *types.Coin) bool {
	return kinematic.Distance(playerCenter, coin.Position) < constants.CoinPickupDistance
}
