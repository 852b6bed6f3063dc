package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawHUD draws the instrument panel: tachometer, throttle and the
// torque and power read-outs
func drawHUD(screen *ebiten.Image, r Rect, e *engine.Engine) {
	cfg := e.Config()
	state := e.State()

	// semi-transparent dark panel
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{100, 100, 120, 255}, false)

	x := r.X + 20
	y := r.Y + 20

	status, statusColor := "STOPPED", color.RGBA{255, 100, 100, 255}
	if state.Running {
		status, statusColor = "RUNNING", color.RGBA{100, 255, 100, 255}
	}
	drawTextAt(screen, cfg.Name, x, y, 16, titleColor)
	y += 26
	drawTextAt(screen, status, x, y, 16, statusColor)
	y += 40

	// green below 80% of the redline, yellow approaching it, red past it
	rpmColor := color.RGBA{100, 255, 100, 255}
	switch {
	case e.OverRedline():
		rpmColor = color.RGBA{255, 100, 100, 255}
	case state.RPM > cfg.ECU.RedlineRPM*0.8:
		rpmColor = color.RGBA{255, 255, 100, 255}
	}
	drawTextAt(screen, fmt.Sprintf("%.0f", state.RPM), x, y, 40, rpmColor)
	y += 48
	drawTextAt(screen, "RPM", x, y, 16, color.RGBA{200, 200, 200, 255})
	y += 24
	drawTachometer(screen, Rect{x, y, r.W - 40, 16}, state.RPM, cfg.ECU)
	y += 40

	drawTextAt(screen, fmt.Sprintf("Throttle  %3.0f%%", state.Throttle*100), x, y, 16, textColor)
	y += 22
	drawProgressBar(screen, Rect{x, y, r.W - 40, 12}, state.Throttle)
	y += 32

	drawTextAt(screen, fmt.Sprintf("Torque    %6.1f", state.Torque), x, y, 16, textColor)
	y += 24
	drawTextAt(screen, fmt.Sprintf("Power     %6.1f hp", state.Horsepower), x, y, 16, textColor)
	y += 24
	drawTextAt(screen, fmt.Sprintf("Cycle     %5.2f", state.CyclePosition), x, y, 16, textColor)
	y += 40

	drawTextAt(screen, "Up/Down: Throttle", x, y, 14, instructionColor)
	y += 20
	drawTextAt(screen, "Space: Ignition", x, y, 14, instructionColor)
	y += 20
	drawTextAt(screen, "Esc/Stop: Leave", x, y, 14, instructionColor)
}

// drawTachometer draws a horizontal rpm gauge with the redline marked
func drawTachometer(screen *ebiten.Image, r Rect, rpm float64, ecu engine.ECU) {
	limit := ecu.RevLimitRPM
	if limit <= 0 {
		return
	}
	percent := math.Min(rpm/limit, 1.0)

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{40, 40, 40, 255}, false)

	filledWidth := r.W * percent
	if filledWidth > 0 {
		// green -> yellow -> red
		var barColor color.RGBA
		if percent < 0.5 {
			ratio := percent / 0.5
			barColor = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
		} else {
			ratio := (percent - 0.5) / 0.5
			barColor = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(filledWidth), float32(r.H), barColor, false)
	}

	redlineX := r.X + r.W*ecu.RedlineRPM/limit
	vector.DrawFilledRect(screen, float32(redlineX), float32(r.Y), float32(r.X+r.W-redlineX), 4, color.RGBA{220, 30, 30, 255}, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.RGBA{150, 150, 150, 255}, false)
}
