package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var creditLines = []string{
	"ENGINE MODEL",
	"first order rpm lag, rectified sine pistons",
	"",
	"BUILT WITH",
	"Ebitengine",
	"bitmapfont",
	"",
	"THANKS FOR PLAYING",
}

// CreditsScreen lists the credits with a single back button
type CreditsScreen struct {
	onBack func() // Callback when the player goes back to the menu
}

// NewCreditsScreen creates the credits screen
func NewCreditsScreen(onBack func()) *CreditsScreen {
	return &CreditsScreen{onBack: onBack}
}

// Update handles the back button and Escape
func (cs *CreditsScreen) Update(in Input) error {
	if in.Pressed(ebiten.KeyEscape, ebiten.KeyBackspace, ebiten.KeyEnter) || in.ClickedIn(in.Layout.CreditsBack) {
		if cs.onBack != nil {
			cs.onBack()
		}
	}
	return nil
}

// Draw renders the credits
func (cs *CreditsScreen) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	l := NewLayout(screen.Bounds().Dx(), screen.Bounds().Dy())

	drawText(screen, "CREDITS", width/2, 70, 48, titleColor)

	y := 150.0
	for _, line := range creditLines {
		clr := color.Color(textColor)
		if line != "" && line == strings.ToUpper(line) {
			clr = titleColor
		}
		drawText(screen, line, width/2, y, 18, clr)
		y += 30
	}

	drawButton(screen, "Back", l.CreditsBack, true)
}
