package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/redracer/client/fonts"
	"github.com/cbodonnell/redracer/client/input"
	"github.com/cbodonnell/redracer/client/objects"
	"github.com/cbodonnell/redracer/client/render"
	"github.com/cbodonnell/redracer/pkg/game"
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// scorePopupTTL is how many ticks a "+N" popup stays on screen
	scorePopupTTL = 40
)

var scorePopupColor = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}

// GameScene owns an engine session. The engine draws into world once per
// tick; Draw copies world to the screen and layers the HUD on top.
type GameScene struct {
	*BaseScene

	random       game.RandomSource
	onSessionEnd func(score int, lastFrame *ebiten.Image)

	// world is the frame buffer the engine draws into.
	world     *ebiten.Image
	scheduler *game.FrameScheduler
	engine    *game.Engine

	lastScore int
	popups    int
	ended     bool
}

type GameSceneOptions struct {
	// Random drives spawning. Defaults to a time seeded source.
	Random game.RandomSource
	// OnSessionEnd receives the final score and the last rendered frame.
	OnSessionEnd func(score int, lastFrame *ebiten.Image)
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (Scene, error) {
	random := opts.Random
	if random == nil {
		random = game.NewMathRandSource(0)
	}
	return &GameScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("game-root", nil)),
		random:       random,
		onSessionEnd: opts.OnSessionEnd,
	}, nil
}

func (s *GameScene) Init() error {
	s.world = ebiten.NewImage(int(constants.CanvasWidth), int(constants.CanvasHeight))
	s.scheduler = game.NewFrameScheduler()

	engine, err := game.NewEngine(game.NewEngineOptions{
		Surface:   render.NewEbitenSurface(s.world, fonts.CoinFont),
		Scheduler: s.scheduler,
		Random:    s.random,
		Listener: game.SessionListenerFunc(func(score int) {
			s.ended = true
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %v", err)
	}
	s.engine = engine

	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	if err := s.Root.AddChild(objects.NewScoreObject("hud-score", s.engine.Score)); err != nil {
		return fmt.Errorf("failed to add score hud: %v", err)
	}

	s.lastScore = 0
	s.ended = false
	s.engine.StartGame()
	return nil
}

func (s *GameScene) Destroy() error {
	if s.scheduler != nil {
		s.scheduler.Cancel()
	}
	return s.BaseScene.Destroy()
}

// Engine returns the engine driven by this scene.
func (s *GameScene) Engine() *game.Engine {
	return s.engine
}

func (s *GameScene) Update() error {
	s.handleInput()
	s.scheduler.RunPending()

	if err := s.spawnScorePopup(); err != nil {
		return err
	}

	if err := s.BaseScene.Update(); err != nil {
		return err
	}

	if s.ended && s.onSessionEnd != nil {
		// only report once
		s.ended = false
		s.onSessionEnd(s.engine.Score(), s.world)
	}
	return nil
}

func (s *GameScene) handleInput() {
	for _, tap := range input.JustPressedTaps() {
		s.engine.HandleTap(float64(tap.X), constants.CanvasWidth)
	}
	if input.IsLeftJustPressed() {
		s.engine.ShiftLeft()
	}
	if input.IsRightJustPressed() {
		s.engine.ShiftRight()
	}
}

func (s *GameScene) spawnScorePopup() error {
	score := s.engine.Score()
	gained := score - s.lastScore
	s.lastScore = score
	if gained <= 0 {
		return nil
	}

	s.popups++
	player := s.engine.State().Player
	popup := objects.NewTextEffect(fmt.Sprintf("popup-%d", s.popups), objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("+%d", gained),
		X:      player.Center().X,
		Y:      player.Position.Y,
		Color:  scorePopupColor,
		Scroll: true,
		TTL:    scorePopupTTL,
		ZIndex: 5,
	})
	if err := s.Root.AddChild(popup); err != nil {
		return fmt.Errorf("failed to add score popup: %v", err)
	}
	log.Trace("Score popup %s: +%d", popup.GetID(), gained)
	return nil
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.world, nil)
	s.BaseScene.Draw(screen)
}
