package ui

import (
	"fmt"

	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SimulationScreen drives and draws a running engine
type SimulationScreen struct {
	engine *engine.Engine
	onExit func() // Callback when the player presses Stop
	exited bool
}

// NewSimulationScreen creates the simulation for an engine it does not own
func NewSimulationScreen(e *engine.Engine, onExit func()) *SimulationScreen {
	return &SimulationScreen{
		engine: e,
		onExit: onExit,
	}
}

// Update routes throttle and ignition input to the engine, then advances it
func (ss *SimulationScreen) Update(in Input) error {
	if in.Pressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		ss.engine.SetThrottle(engine.ThrottleStep)
	}
	if in.Pressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		ss.engine.SetThrottle(-engine.ThrottleStep)
	}
	if in.Pressed(ebiten.KeySpace) {
		if ss.engine.Running() {
			ss.engine.Stop()
		} else {
			ss.engine.Start()
		}
	}

	if !ss.exited && (in.Pressed(ebiten.KeyEscape) || in.ClickedIn(in.Layout.StopButton)) {
		ss.exited = true
		if ss.onExit != nil {
			ss.onExit()
		}
	}

	ss.engine.Advance(in.DT)
	return nil
}

// Draw renders the engine and the instrument panel
func (ss *SimulationScreen) Draw(screen *ebiten.Image) {
	l := NewLayout(screen.Bounds().Dx(), screen.Bounds().Dy())
	cfg := ss.engine.Config()
	state := ss.engine.State()

	DrawEngine(screen, l.EngineArea, cfg, state)
	drawHUD(screen, l.HUD, ss.engine)
	drawButton(screen, "Stop", l.StopButton, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 24, screen.Bounds().Dy()-20)
}
