package game

import (
	"fmt"

	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/game/types"
	"github.com/cbodonnell/redracer/pkg/log"
)

// Engine owns one game session at a time and advances it one tick per
// frame. It is not safe for concurrent use; every call must come from the
// frame loop.
type Engine struct {
	surface   Surface
	scheduler Scheduler
	random    RandomSource
	listener  SessionListener
	gameState *types.GameState

	// baseLogger is the logger passed in; logger adds the session number
	baseLogger *log.Logger
	logger     *log.Logger
	// session counts StartGame calls
	session int
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	// Surface receives every draw call. Required.
	Surface Surface
	// Scheduler is asked for the next tick while running. Required.
	Scheduler Scheduler
	// Random drives spawn decisions. Required.
	Random RandomSource
	// Listener is told the final score when a session ends. Optional.
	Listener SessionListener
	// GameState defaults to a fresh state with its own collision space.
	GameState *types.GameState
	// Logger defaults to the package logger.
	Logger *log.Logger
}

func NewEngine(opts NewEngineOptions) (*Engine, error) {
	if opts.Surface == nil {
		return nil, fmt.Errorf("surface is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("random source is required")
	}

	gameState := opts.GameState
	if gameState == nil {
		gameState = types.NewGameState(NewCollisionSpace())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Engine{
		surface:    opts.Surface,
		scheduler:  opts.Scheduler,
		random:     opts.Random,
		listener:   opts.Listener,
		gameState:  gameState,
		baseLogger: logger,
		logger:     logger,
	}, nil
}

// State returns the live session state.
func (e *Engine) State() *types.GameState {
	return e.gameState
}

func (e *Engine) Running() bool {
	return e.gameState.Running
}

func (e *Engine) Score() int {
	return e.gameState.Score
}

// StartGame resets the session and schedules the first tick. It can be
// called at any time; a running session is discarded.
func (e *Engine) StartGame() {
	e.gameState.Reset()
	e.gameState.Running = true
	e.session++
	e.logger = e.baseLogger.With("session", e.session)
	e.logger.Info("Session started")
	e.scheduler.RequestTick(e.Tick)
}

// HandleTap maps a tap at screen x to a lane shift: the left half of the
// viewport shifts left, the right half shifts right. Taps while idle are
// ignored.
func (e *Engine) HandleTap(x, viewportWidth float64) {
	if x < viewportWidth/2 {
		e.ShiftLeft()
		return
	}
	e.ShiftRight()
}

func (e *Engine) ShiftLeft() {
	if !e.gameState.Running {
		return
	}
	if e.gameState.Player.ShiftLeft() {
		e.logger.Trace("Player shifted left to %0.0f", e.gameState.Player.Position.X)
	}
}

func (e *Engine) ShiftRight() {
	if !e.gameState.Running {
		return
	}
	if e.gameState.Player.ShiftRight() {
		e.logger.Trace("Player shifted right to %0.0f", e.gameState.Player.Position.X)
	}
}

// Tick runs one iteration of the game loop. It does nothing while idle.
func (e *Engine) Tick() {
	if !e.gameState.Running {
		return
	}

	drawBackground(e.surface)
	e.updateRoadLine()
	drawPlayer(e.surface, e.gameState.Player)

	e.spawnEnemy()
	crashed := e.updateEnemies()

	e.spawnCoin()
	e.updateCoins()

	if crashed {
		e.endSession()
		return
	}
	e.scheduler.RequestTick(e.Tick)
}

func (e *Engine) updateRoadLine() {
	e.gameState.LineOffset += e.gameState.Speed
	if e.gameState.LineOffset > constants.RoadLineWrap {
		e.gameState.LineOffset = 0
	}
	drawRoadLine(e.surface, e.gameState.LineOffset)
}

// spawnEnemy spends one random draw on the spawn decision and, on success,
// one on the lane.
func (e *Engine) spawnEnemy() {
	if e.random.Float64() >= constants.EnemySpawnChance {
		return
	}
	lanes := constants.EnemyLanes
	i := int(e.random.Float64() * float64(len(lanes)))
	if i >= len(lanes) {
		i = len(lanes) - 1
	}
	enemy := types.NewEnemy(lanes[i], constants.EnemySpawnY)
	e.gameState.AddEnemy(enemy)
	e.logger.Trace("Enemy %s spawned in lane %0.0f", enemy.ID, enemy.Position.X)
}

// updateEnemies advances and draws every enemy, then culls the ones past
// the bottom edge. It reports whether any enemy hit the player.
func (e *Engine) updateEnemies() bool {
	speed := e.gameState.Speed
	player := e.gameState.Player
	player.Sync()

	crashed := false
	for _, enemy := range e.gameState.Enemies {
		enemy.Advance(speed)
		drawEnemy(e.surface, enemy)
		if !crashed && collidesWithPlayer(player, enemy) {
			e.logger.Debug("Player hit enemy %s", enemy.ID)
			crashed = true
		}
	}

	e.gameState.RemoveEnemies(func(enemy *types.Enemy) bool {
		return !types.OffScreen(enemy.Position.Y)
	})

	return crashed
}

// spawnCoin spends one random draw on the spawn decision and, on success,
// one on the x position.
func (e *Engine) spawnCoin() {
	if e.random.Float64() >= constants.CoinSpawnChance {
		return
	}
	x := constants.CoinSpawnMinX + e.random.Float64()*constants.CoinSpawnRangeX
	coin := types.NewCoin(x, constants.CoinSpawnY)
	e.gameState.AddCoin(coin)
	e.logger.Trace("Coin %s spawned at %0.1f", coin.ID, coin.Position.X)
}

// updateCoins advances and draws every coin, scores the ones close enough
// to the player and culls the collected and off screen ones.
func (e *Engine) updateCoins() {
	speed := e.gameState.Speed
	playerCenter := e.gameState.Player.Center()

	collected := make(map[*types.Coin]bool)
	for _, coin := range e.gameState.Coins {
		coin.Advance(speed)
		drawCoin(e.surface, coin)
		if isCollected(playerCenter, coin) {
			collected[coin] = true
		}
	}

	for range collected {
		e.gameState.Score += constants.CoinScore
		e.gameState.Speed += constants.CoinSpeedBonus
	}
	if len(collected) > 0 {
		e.logger.Trace("Collected %d coin(s), score %d, speed %0.1f", len(collected), e.gameState.Score, e.gameState.Speed)
	}

	e.gameState.RemoveCoins(func(coin *types.Coin) bool {
		return !collected[coin] && !types.OffScreen(coin.Position.Y)
	})
}

func (e *Engine) endSession() {
	e.gameState.Running = false
	e.logger.Info("Session ended with score %d", e.gameState.Score)
	if e.listener != nil {
		e.listener.OnSessionEnd(e.gameState.Score)
	}
}
