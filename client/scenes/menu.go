package scenes

import (
	"github.com/cbodonnell/redracer/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onStart    func()
	onDownload func()
	ui         *ebitenui.UI
}

type MenuSceneOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func()
	// OnDownload is called when the download button is pressed. The button
	// is hidden when nil.
	OnDownload func()
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:  NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:    opts.OnStart,
		onDownload: opts.OnDownload,
	}, nil
}

func (s *MenuScene) Init() error {
	s.ui = newPanelUI(panelOptions{
		title:       "SUPER RED RACER",
		titleColor:  titleRed,
		subtitle:    "Collect Coins & Avoid Cars!",
		buttonLabel: "START ENGINE",
		onClick:     s.onStart,

		secondaryLabel: "DOWNLOAD GAME",
		onSecondary:    s.onDownload,
	})
	return s.BaseScene.Init()
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
