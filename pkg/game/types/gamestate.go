package types

import (
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagPlayer string = "player"
	CollisionSpaceTagEnemy  string = "enemy"
)

type GameState struct {
	// Player is the player's car
	Player *PlayerState
	// Enemies in spawn order
	Enemies []*Enemy
	// Coins in spawn order
	Coins []*Coin
	// Score is +10 per coin
	Score int
	// Speed is how far every entity moves per tick
	Speed float64
	// Running is true between StartGame and a crash
	Running bool
	// LineOffset animates the road centerline
	LineOffset float64
	// CollisionSpace is a resolv.Space used as the collision broad phase
	CollisionSpace *resolv.Space
}

func NewGameState(collisionSpace *resolv.Space) *GameState {
	g := &GameState{
		Player:         NewPlayerState(),
		Enemies:        make([]*Enemy, 0),
		Coins:          make([]*Coin, 0),
		Speed:          constants.StartingSpeed,
		CollisionSpace: collisionSpace,
	}
	if collisionSpace != nil {
		collisionSpace.Add(g.Player.Object)
	}
	return g
}

// Reset clears the session back to its starting values. The running flag is
// left to the caller.
func (g *GameState) Reset() {
	g.Score = 0
	g.Speed = constants.StartingSpeed
	g.LineOffset = 0
	for _, enemy := range g.Enemies {
		g.removeFromSpace(enemy)
	}
	g.Enemies = make([]*Enemy, 0)
	g.Coins = make([]*Coin, 0)
	g.Player.Reset()
}

func (g *GameState) AddEnemy(enemy *Enemy) {
	g.Enemies = append(g.Enemies, enemy)
	if g.CollisionSpace != nil && enemy.Object != nil {
		g.CollisionSpace.Add(enemy.Object)
	}
}

// RemoveEnemies keeps only the enemies for which keep returns true.
func (g *GameState) RemoveEnemies(keep func(*Enemy) bool) {
	kept := g.Enemies[:0]
	for _, enemy := range g.Enemies {
		if keep(enemy) {
			kept = append(kept, enemy)
			continue
		}
		g.removeFromSpace(enemy)
	}
	clear(g.Enemies[len(kept):])
	g.Enemies = kept
}

func (g *GameState) AddCoin(coin *Coin) {
	g.Coins = append(g.Coins, coin)
}

// RemoveCoins keeps only the coins for which keep returns true.
func (g *GameState) RemoveCoins(keep func(*Coin) bool) {
	kept := g.Coins[:0]
	for _, coin := range g.Coins {
		if keep(coin) {
			kept = append(kept, coin)
		}
	}
	clear(g.Coins[len(kept):])
	g.Coins = kept
}

func (g *GameState) removeFromSpace(enemy *Enemy) {
	if g.CollisionSpace == nil || enemy.Object == nil {
		return
	}
	g.CollisionSpace.Remove(enemy.Object)
}
