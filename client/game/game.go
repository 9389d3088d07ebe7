package game

import (
	"fmt"

	"github.com/cbodonnell/redracer/client/browser"
	"github.com/cbodonnell/redracer/client/flow"
	"github.com/cbodonnell/redracer/client/input"
	"github.com/cbodonnell/redracer/client/scenes"
	"github.com/cbodonnell/redracer/pkg/game"
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// random is shared by every session so a seeded run is reproducible
	// across restarts.
	random game.RandomSource
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// next is a scene change requested during Update, applied before the
	// next Update so a scene is never destroyed while it is updating.
	next func() error
	// downloadURL is opened by the download buttons.
	downloadURL string
}

type NewGameOptions struct {
	Debug bool
	// Seed seeds spawning. Zero seeds from the clock.
	Seed int64
	// DownloadURL is where the standalone build is served. Empty hides the
	// download buttons.
	DownloadURL string
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:       opts.Debug,
		random:      game.NewMathRandSource(opts.Seed),
		downloadURL: opts.DownloadURL,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu

	return g, nil
}

func (g *Game) Mode() flow.GameMode {
	return g.mode
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// transition schedules the scene change for e. Events that do not apply
// to the current mode are dropped.
func (g *Game) transition(e flow.Event, load func() error) {
	mode, ok := flow.Next(g.mode, e)
	if !ok {
		log.Debug("Ignoring %s in mode %s", e, g.mode)
		return
	}
	g.next = func() error {
		if err := load(); err != nil {
			return err
		}
		log.Debug("Mode changed from %s to %s", g.mode, mode)
		g.mode = mode
		return nil
	}
}

// onDownload returns the download button handler, or nil to hide the
// button when no download URL is configured.
func (g *Game) onDownload() func() {
	if g.downloadURL == "" {
		return nil
	}
	return func() {
		if err := browser.Open(g.downloadURL); err != nil {
			log.Error("Failed to open download: %v", err)
		}
	}
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnStart: func() {
			g.transition(flow.EventStart, g.loadGame)
		},
		OnDownload: g.onDownload(),
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Random: g.random,
		OnSessionEnd: func(score int, lastFrame *ebiten.Image) {
			g.transition(flow.EventCrash, func() error {
				return g.loadGameOver(score, lastFrame)
			})
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	return nil
}

func (g *Game) loadGameOver(score int, lastFrame *ebiten.Image) error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Score:     score,
		LastFrame: lastFrame,
		OnRestart: func() {
			g.transition(flow.EventStart, g.loadGame)
		},
		OnDownload: g.onDownload(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	return nil
}

func (g *Game) Update() error {
	if g.next != nil {
		next := g.next
		g.next = nil
		if err := next(); err != nil {
			return fmt.Errorf("failed to change scene: %v", err)
		}
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	if input.IsPositiveJustPressed() {
		g.transition(flow.EventStart, g.loadGame)
	}
	if input.IsNegativeJustPressed() {
		g.transition(flow.EventQuit, g.loadMenu)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Mode: %s", g.mode))

	gameScene, ok := g.scene.(*scenes.GameScene)
	if !ok {
		return
	}
	state := gameScene.Engine().State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Speed: %0.1f", state.Speed))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n   Enemies: %d", len(state.Enemies)))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n\n\n   Coins: %d", len(state.Coins)))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(constants.CanvasWidth), int(constants.CanvasHeight)
}
