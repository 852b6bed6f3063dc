package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorkshopBuildTime is how long the engine takes to "assemble", in seconds
const WorkshopBuildTime = 2.0

// WorkshopScreen shows the engine's data sheet while it is assembled, then
// hands over to the simulation.
type WorkshopScreen struct {
	config  engine.Config
	elapsed float64
	ready   bool

	onReady  func() // Callback when assembly is finished
	onCancel func() // Callback when the player backs out
}

// NewWorkshopScreen creates the workshop for an engine config
func NewWorkshopScreen(cfg engine.Config, onReady, onCancel func()) *WorkshopScreen {
	return &WorkshopScreen{
		config:   cfg,
		onReady:  onReady,
		onCancel: onCancel,
	}
}

// Progress returns how far along assembly is, 0 to 1
func (ws *WorkshopScreen) Progress() float64 {
	return math.Min(ws.elapsed/WorkshopBuildTime, 1)
}

// Update runs the assembly timer and handles Escape
func (ws *WorkshopScreen) Update(in Input) error {
	if ws.ready {
		return nil
	}

	if in.Pressed(ebiten.KeyEscape) {
		ws.ready = true
		if ws.onCancel != nil {
			ws.onCancel()
		}
		return nil
	}

	ws.elapsed += in.DT
	if ws.elapsed >= WorkshopBuildTime {
		ws.ready = true
		if ws.onReady != nil {
			ws.onReady()
		}
	}
	return nil
}

// Draw renders the data sheet and the assembly progress
func (ws *WorkshopScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	centerX := width / 2

	drawText(screen, "WORKSHOP", centerX, 60, 48, titleColor)
	drawText(screen, ws.config.Name, centerX, 115, 24, textColor)

	lines := dataSheet(ws.config)
	x := centerX - 260
	y := 160.0
	for _, line := range lines {
		drawTextAt(screen, line, x, y, 16, color.RGBA{190, 210, 230, 255})
		y += 26
	}

	drawProgressBar(screen, Rect{centerX - 200, height - 120, 400, 16}, ws.Progress())
	drawText(screen, "Assembling engine...", centerX, height-80, 16, instructionColor)
	drawText(screen, "Esc: Back to menu", centerX, height-40, 16, instructionColor)
}

// dataSheet formats the engine config for display
func dataSheet(cfg engine.Config) []string {
	muffler := "no"
	if cfg.Exhaust.HasMuffler {
		muffler = "yes"
	}
	return []string{
		fmt.Sprintf("Layout:        %s, %d cylinders, %d-stroke", cfg.Layout, cfg.CylinderCount, cfg.StrokeType),
		fmt.Sprintf("Displacement:  %.0f cc", cfg.DisplacementCC),
		fmt.Sprintf("Bore x Stroke: %.1f x %.1f mm, %d rings, %s", cfg.Piston.DiameterMM, cfg.Piston.StrokeMM, cfg.Piston.RingCount, cfg.Piston.Material),
		fmt.Sprintf("Fuel:          %s", cfg.FuelType),
		fmt.Sprintf("Aspiration:    %s (x%.1f torque)", cfg.Aspiration, engine.AspirationFactor(cfg.Aspiration)),
		fmt.Sprintf("Valves:        %d per cylinder", cfg.ValvesPerCylinder),
		fmt.Sprintf("Exhaust:       %.0f mm, muffler %s", cfg.Exhaust.DiameterMM, muffler),
		fmt.Sprintf("ECU:           idle %.0f, redline %.0f, limit %.0f rpm", cfg.ECU.IdleRPM, cfg.ECU.RedlineRPM, cfg.ECU.RevLimitRPM),
	}
}

// drawProgressBar draws a bordered bar filled to progress (0 to 1)
func drawProgressBar(screen *ebiten.Image, r Rect, progress float64) {
	progress = math.Max(0, math.Min(progress, 1))
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{40, 40, 40, 255}, false)
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W*progress), float32(r.H), color.RGBA{100, 200, 255, 255}, false)
	}
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, color.RGBA{150, 150, 150, 255}, false)
}
