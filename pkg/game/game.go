package game

import (
	"errors"
	"io/fs"
	"runtime"

	"github.com/golangdaddy/pistonbay/pkg/background"
	"github.com/golangdaddy/pistonbay/pkg/config"
	"github.com/golangdaddy/pistonbay/pkg/models"
	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/golangdaddy/pistonbay/pkg/sound"
	"github.com/golangdaddy/pistonbay/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

const (
	Title   = "PISTON BAY"
	Version = "v0.1.0"

	gridCell = 32
	gridSeed = 1
)

// Screen represents a UI screen interface
type Screen interface {
	Update(in ui.Input) error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and owns everything that lives
// across screens: the flow, the selected engine and the engine being run
type Game struct {
	opts   config.Options
	log    *logrus.Logger
	flow   *Flow
	layout ui.Layout

	currentScreen Screen

	presets []engine.Config
	preset  int
	engine  *engine.Engine // only set while the simulation is current

	workshop *models.Workshop

	player *sound.Player
	bg     *ebiten.Image
	quit   bool
}

// New creates a game on the splash screen. presets must not be empty and
// preset selects the engine the workshop builds first.
func New(opts config.Options, presets []engine.Config, preset int, logger *logrus.Logger) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(presets) == 0 {
		presets = engine.Presets()
	}
	if preset < 0 || preset >= len(presets) {
		preset = 0
	}

	g := &Game{
		opts:    opts,
		log:     logger,
		layout:  ui.NewLayout(opts.Width, opts.Height),
		presets: presets,
		preset:  preset,
	}
	g.loadWorkshop()
	g.flow = NewFlow(g.onSwap)
	g.currentScreen = g.newScreen(ScreenSplash)

	if !opts.Mute {
		player, err := sound.NewPlayer(audio.NewContext(sound.SampleRate), sound.NewEngineSound(sound.SampleRate))
		if err != nil {
			g.log.WithError(err).Warn("engine sound disabled")
		} else {
			g.player = player
		}
	}

	return g
}

// Current returns the screen being shown
func (g *Game) Current() ScreenID {
	return g.flow.Current()
}

// Engine returns the engine being simulated, or nil outside the simulation
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Active returns the engine configuration the workshop will build
func (g *Game) Active() engine.Config {
	return g.presets[g.preset]
}

// Update handles game logic updates
func (g *Game) Update() error {
	return g.Tick(ui.ReadInput(g.opts.TickSeconds(), g.flow.InputEnabled(), g.layout))
}

// Tick advances the game by one frame of input. The fade is stepped first so
// a screen swapped in this tick already receives the input.
func (g *Game) Tick(in ui.Input) error {
	g.flow.Step(in.DT)

	in.Enabled = in.Enabled && g.flow.InputEnabled()
	in.Layout = g.layout
	if g.currentScreen != nil {
		if err := g.currentScreen.Update(in); err != nil {
			return err
		}
	}

	g.syncSound()

	if g.quit && runtime.GOOS != "js" {
		g.log.Info("quit")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the grid, the current screen and the fade over both
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.bg == nil || g.bg.Bounds().Dx() != w || g.bg.Bounds().Dy() != h {
		g.bg = background.NewGenerator(w, h).GenerateGrid(gridCell, gridSeed)
	}
	screen.DrawImage(g.bg, nil)

	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
	ui.DrawFade(screen, g.flow.Alpha())
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.layout.Width, g.layout.Height
}

// Close releases the audio player
func (g *Game) Close() error {
	if g.player == nil {
		return nil
	}
	return g.player.Close()
}

func (g *Game) onSwap(from, to ScreenID) {
	entry := g.log.WithFields(logrus.Fields{"from": from, "to": to})

	if from == ScreenSimulation && g.engine != nil {
		g.engine.Stop()
		g.engine = nil
	}
	if to == ScreenSimulation {
		g.engine = engine.New(g.Active())
		g.engine.Start()
		entry = entry.WithField("engine", g.engine.Config().Name)
		g.workshop.RecordRun(g.engine.Config().Name)
		g.saveWorkshop()
	}

	g.currentScreen = g.newScreen(to)
	entry.Debug("screen")
}

func (g *Game) newScreen(id ScreenID) Screen {
	switch id {
	case ScreenSplash:
		return ui.NewSplashScreen(Title, Version, func() {
			g.flow.Request(ScreenMenu)
		})
	case ScreenMenu:
		return ui.NewMenuScreen(g.presets, g.preset, g.onMenu, func(i int) {
			g.preset = i
			g.log.WithField("engine", g.presets[i].Name).Info("preset selected")
			g.workshop.Select(g.presets[i].Name)
			g.saveWorkshop()
		})
	case ScreenCredits:
		return ui.NewCreditsScreen(func() {
			g.flow.Request(ScreenMenu)
		})
	case ScreenWorkshop:
		return ui.NewWorkshopScreen(g.Active(), func() {
			g.flow.Request(ScreenSimulation)
		}, func() {
			g.flow.Request(ScreenMenu)
		})
	case ScreenSimulation:
		// Stop leaves for the menu; Space toggles ignition in place
		return ui.NewSimulationScreen(g.engine, func() {
			g.flow.Request(ScreenMenu)
		})
	}
	g.log.WithField("screen", id).Error("unknown screen")
	return nil
}

func (g *Game) onMenu(item ui.MenuItem) {
	switch item {
	case ui.MenuWorkshop:
		g.flow.Request(ScreenWorkshop)
	case ui.MenuCredits:
		g.flow.Request(ScreenCredits)
	case ui.MenuQuit:
		g.quit = true
	}
}

func (g *Game) syncSound() {
	if g.player == nil {
		return
	}
	if g.engine == nil {
		g.player.Sound().Set(0, 0, false)
		return
	}
	state := g.engine.State()
	g.player.Sound().Set(g.engine.FiringFrequency(), state.Throttle, state.Running)
}

// loadWorkshop restores the engine picked in an earlier session. An engine
// loaded from a file always wins over the saved choice.
func (g *Game) loadWorkshop() {
	g.workshop = models.NewWorkshop()
	if g.opts.SaveFile == "" {
		return
	}

	w, err := models.LoadFromFile(g.opts.SaveFile)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		g.log.WithError(err).Warn("ignoring workshop save")
		return
	}
	g.workshop = w

	if g.opts.EngineFile != "" {
		return
	}
	for i, p := range g.presets {
		if p.Name == w.EngineName {
			g.preset = i
			g.log.WithFields(logrus.Fields{"engine": p.Name, "runs": w.Runs}).Info("workshop restored")
			return
		}
	}
}

func (g *Game) saveWorkshop() {
	if g.opts.SaveFile == "" {
		return
	}
	if err := g.workshop.SaveToFile(g.opts.SaveFile); err != nil {
		g.log.WithError(err).Warn("workshop not saved")
	}
}
