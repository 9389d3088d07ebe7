package scenes

import (
	"fmt"

	"github.com/cbodonnell/redracer/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final score over the last frame of the session.
type GameOverScene struct {
	*BaseScene

	score     int
	lastFrame *ebiten.Image
	onRestart  func()
	onDownload func()
	ui         *ebitenui.UI
}

type GameOverSceneOptions struct {
	// Score is the final score of the session.
	Score int
	// LastFrame is drawn behind the panel. Optional.
	LastFrame *ebiten.Image
	// OnRestart is called when the restart button is pressed.
	OnRestart func()
	// OnDownload is called when the download button is pressed. The button
	// is hidden when nil.
	OnDownload func()
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	return &GameOverScene{
		BaseScene:  NewBaseScene(objects.NewBaseObject("gameover-root", nil)),
		score:      opts.Score,
		lastFrame:  opts.LastFrame,
		onRestart:  opts.OnRestart,
		onDownload: opts.OnDownload,
	}, nil
}

func (s *GameOverScene) Init() error {
	s.ui = newPanelUI(panelOptions{
		title:       "BOOM! CRASHED",
		titleColor:  titleRed,
		subtitle:    fmt.Sprintf("You collected %d coins!", s.score),
		buttonLabel: "TRY AGAIN",
		onClick:     s.onRestart,

		secondaryLabel: "DOWNLOAD GAME",
		onSecondary:    s.onDownload,
	})
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	if s.lastFrame != nil {
		screen.DrawImage(s.lastFrame, nil)
	}
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
