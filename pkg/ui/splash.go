package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Splash timings in seconds
const (
	SplashTitleFade   = 1.0
	SplashVersionFade = 1.0
	SplashLoading     = 1.5
)

// SplashScreen fades in the title, then the version line, then shows a
// loading indicator before handing over to the menu.
type SplashScreen struct {
	title, version string

	titleAlpha   float64
	versionAlpha float64
	loading      float64 // seconds spent loading
	done         bool

	onDone func() // Callback when the splash has finished
}

// NewSplashScreen creates the opening screen
func NewSplashScreen(title, version string, onDone func()) *SplashScreen {
	return &SplashScreen{
		title:   title,
		version: version,
		onDone:  onDone,
	}
}

// Update advances the splash sequence. It runs on time alone.
func (ss *SplashScreen) Update(in Input) error {
	if ss.done {
		return nil
	}

	dt := in.DT
	switch {
	case ss.titleAlpha < 1:
		ss.titleAlpha = math.Min(ss.titleAlpha+dt/SplashTitleFade, 1)
	case ss.versionAlpha < 1:
		ss.versionAlpha = math.Min(ss.versionAlpha+dt/SplashVersionFade, 1)
	default:
		ss.loading += dt
		if ss.loading >= SplashLoading {
			ss.done = true
			if ss.onDone != nil {
				ss.onDone()
			}
		}
	}
	return nil
}

// Done reports whether the splash has handed over
func (ss *SplashScreen) Done() bool {
	return ss.done
}

// Draw renders the splash
func (ss *SplashScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	centerX := width / 2

	drawTextAlpha(screen, ss.title, centerX, height/3, 64, titleColor, ss.titleAlpha)
	drawTextAlpha(screen, ss.version, centerX, height/3+70, 20, color.RGBA{180, 180, 200, 255}, ss.versionAlpha)

	if ss.versionAlpha >= 1 {
		progress := math.Min(ss.loading/SplashLoading, 1)
		drawProgressBar(screen, Rect{centerX - 150, height * 2 / 3, 300, 12}, progress)
		drawText(screen, "Loading...", centerX, height*2/3+36, 16, instructionColor)
	}
}
