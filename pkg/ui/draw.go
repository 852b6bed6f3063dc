package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	buttonColor      = color.RGBA{40, 40, 60, 255}
	buttonHighlight  = color.RGBA{60, 100, 140, 255}
	buttonBorder     = color.RGBA{80, 80, 100, 255}
	textColor        = color.RGBA{255, 255, 255, 255}
	textHighlight    = color.RGBA{200, 240, 255, 255}
	titleColor       = color.RGBA{255, 200, 50, 255}
	instructionColor = color.RGBA{150, 150, 150, 255}
)

// drawButton draws a bordered button with its label centred
func drawButton(screen *ebiten.Image, label string, r Rect, highlighted bool) {
	bg, fg := buttonColor, textColor
	if highlighted {
		bg, fg = buttonHighlight, textHighlight
	}

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X)+1, float32(r.Y)+1, float32(r.W)-2, float32(r.H)-2, 2, buttonBorder, false)

	// bitmap font is 16px tall, so its centre is ~8px from the top
	centerX, centerY := r.Center()
	textWidth := text.Advance(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-textWidth/2, centerY-8)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, label, face, op)
}

// drawText draws text centred on (centerX, centerY) at a pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	drawTextAlpha(screen, str, centerX, centerY, size, clr, 1)
}

// drawTextAlpha is drawText with an extra opacity in [0, 1]
func drawTextAlpha(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color, alpha float64) {
	scale := size / 16.0
	scaledWidth := text.Advance(str, face) * scale
	scaledHeight := 16.0 * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-scaledWidth/2, centerY-scaledHeight/2)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

// drawTextAt draws left aligned text with its top at y
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / 16.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// DrawFade darkens the whole surface; alpha 1 leaves it untouched
func DrawFade(screen *ebiten.Image, alpha float64) {
	if alpha >= 1 {
		return
	}
	if alpha < 0 {
		alpha = 0
	}
	b := screen.Bounds()
	shade := color.RGBA{0, 0, 0, uint8(255 * (1 - alpha))}
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shade, false)
}
