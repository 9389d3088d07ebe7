package scenes

import (
	"image/color"

	"github.com/cbodonnell/redracer/client/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	overlayColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
	subtitleColor = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	titleRed      = color.NRGBA{R: 0xff, G: 0x47, B: 0x57, A: 255}
)

type panelOptions struct {
	title       string
	titleColor  color.Color
	subtitle    string
	buttonLabel string
	onClick     func()
	// secondaryLabel adds a smaller button under the main one when set.
	secondaryLabel string
	onSecondary    func()
}

var (
	primaryButtonImage = &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0x47, B: 0x57, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 0xe8, G: 0x3a, B: 0x4a, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 0xc0, G: 0x2d, B: 0x3b, A: 255}),
	}
	secondaryButtonImage = &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 0x2f, G: 0x35, B: 0x42, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 0x3d, G: 0x44, B: 0x54, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 0x24, G: 0x29, B: 0x33, A: 255}),
	}
)

// newPanelUI lays out a full screen panel with a title, a subtitle, an
// action button and an optional secondary button.
func newPanelUI(opts panelOptions) *ebitenui.UI {

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(overlayColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    200,
				Left:   30,
				Right:  30,
				Bottom: 90,
			}))),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(opts.title, fonts.TitleFont, opts.titleColor),
		widget.TextOpts.WidgetOpts(centered),
	))

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(opts.subtitle, fonts.TTFSmallFont, subtitleColor),
		widget.TextOpts.WidgetOpts(centered),
	))

	rootContainer.AddChild(newPanelButton(opts.buttonLabel, primaryButtonImage, fonts.TTFNormalFont, opts.onClick))
	if opts.secondaryLabel != "" && opts.onSecondary != nil {
		rootContainer.AddChild(newPanelButton(opts.secondaryLabel, secondaryButtonImage, fonts.TTFSmallFont, opts.onSecondary))
	}

	return &ebitenui.UI{
		Container: rootContainer,
	}
}

func newPanelButton(label string, buttonImage *widget.ButtonImage, face font.Face, onClick func()) *widget.Button {
	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    10,
			Bottom: 10,
		}),
	)
	button.ClickedEvent.AddHandler(func(args interface{}) {
		onClick()
	})
	return button
}
