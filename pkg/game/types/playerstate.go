package types

import (
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// PlayerCollisionMargin pads the player's collision object on every side.
// resolv maps an object to cells by its last whole unit, so without the
// pad a sub-unit overlap could land in neighbouring cells and be missed by
// the broad phase.
const PlayerCollisionMargin = 1

type PlayerState struct {
	Position kinematic.Vector `json:"position"`
	// Object mirrors Position in the collision space, grown by
	// PlayerCollisionMargin
	Object *resolv.Object `json:"-"`
}

func NewPlayerState() *PlayerState {
	return &PlayerState{
		Position: kinematic.Vector{
			X: constants.PlayerStartingX,
			Y: constants.PlayerY,
		},
		Object: resolv.NewObject(
			constants.PlayerStartingX-PlayerCollisionMargin,
			constants.PlayerY-PlayerCollisionMargin,
			constants.PlayerWidth+2*PlayerCollisionMargin,
			constants.PlayerHeight+2*PlayerCollisionMargin,
			CollisionSpaceTagPlayer,
		),
	}
}

// Bounds returns the player's bounding box.
func (p *PlayerState) Bounds() kinematic.Rect {
	return kinematic.NewRect(p.Position, constants.PlayerWidth, constants.PlayerHeight)
}

// Center returns the center of the player's car.
func (p *PlayerState) Center() kinematic.Vector {
	return p.Bounds().Center()
}

// ShiftLeft moves the player one lane left. It returns false, leaving the
// player in place, when the move would leave [PlayerMinX, PlayerMaxX].
func (p *PlayerState) ShiftLeft() bool {
	if p.Position.X-constants.PlayerLaneStep < constants.PlayerMinX {
		return false
	}
	p.setX(p.Position.X - constants.PlayerLaneStep)
	return true
}

// ShiftRight moves the player one lane right. It returns false, leaving the
// player in place, when the move would leave [PlayerMinX, PlayerMaxX].
func (p *PlayerState) ShiftRight() bool {
	if p.Position.X+constants.PlayerLaneStep > constants.PlayerMaxX {
		return false
	}
	p.setX(p.Position.X + constants.PlayerLaneStep)
	return true
}

// Reset puts the player back in the center lane.
func (p *PlayerState) Reset() {
	p.setX(constants.PlayerStartingX)
}

func (p *PlayerState) setX(x float64) {
	p.Position.X = x
	p.Sync()
}

// Sync moves the collision object to match Position. Position is the
// source of truth; callers that write it directly must sync before the
// next collision check.
func (p *PlayerState) Sync() {
	if p.Object == nil {
		return
	}
	p.Object.Position.X = p.Position.X - PlayerCollisionMargin
	p.Object.Position.Y = p.Position.Y - PlayerCollisionMargin
	p.Object.Update()
}
