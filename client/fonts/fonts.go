package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

// TitleFont is used for headings on the menu and game over screens.
var TitleFont font.Face

var TTFLargeFont font.Face
var TTFNormalFont font.Face
var TTFSmallFont font.Face

// CoinFont is the bold face drawn on coins.
var CoinFont font.Face

const dpi = 72

func loadFonts() error {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	TitleFont, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    36,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	TTFLargeFont = newTTFFace(ttfFont, 32)
	TTFNormalFont = newTTFFace(ttfFont, 24)
	TTFSmallFont = newTTFFace(ttfFont, 16)

	ttfBold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	CoinFont = newTTFFace(ttfBold, 18)

	return nil
}

func newTTFFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
