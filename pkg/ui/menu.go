package ui

import (
	"fmt"

	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScreen is the main menu. It also shows which engine the workshop
// will build, cycled with the left and right arrows.
type MenuScreen struct {
	selectedOption MenuItem
	presets        []engine.Config
	preset         int

	onSelect func(MenuItem) // Callback when a menu item is activated
	onPreset func(int)      // Callback when the engine preset changes
}

// NewMenuScreen creates the main menu
func NewMenuScreen(presets []engine.Config, preset int, onSelect func(MenuItem), onPreset func(int)) *MenuScreen {
	return &MenuScreen{
		selectedOption: MenuWorkshop,
		presets:        presets,
		preset:         preset,
		onSelect:       onSelect,
		onPreset:       onPreset,
	}
}

// Selected returns the highlighted menu item
func (ms *MenuScreen) Selected() MenuItem {
	return ms.selectedOption
}

// Preset returns the index of the engine shown
func (ms *MenuScreen) Preset() int {
	return ms.preset
}

// Update handles keyboard and pointer input for the menu
func (ms *MenuScreen) Update(in Input) error {
	if in.Pressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		ms.selectedOption = (ms.selectedOption + menuItemCount - 1) % menuItemCount
	}
	if in.Pressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		ms.selectedOption = (ms.selectedOption + 1) % menuItemCount
	}

	if len(ms.presets) > 1 {
		switch {
		case in.Pressed(ebiten.KeyArrowLeft, ebiten.KeyA):
			ms.setPreset((ms.preset + len(ms.presets) - 1) % len(ms.presets))
		case in.Pressed(ebiten.KeyArrowRight, ebiten.KeyD):
			ms.setPreset((ms.preset + 1) % len(ms.presets))
		}
	}

	if in.Pressed(ebiten.KeyEnter, ebiten.KeySpace) {
		ms.activate(ms.selectedOption)
		return nil
	}

	if in.Enabled && in.Clicked {
		if item, ok := in.Layout.MenuItemAt(in.CursorX, in.CursorY); ok {
			ms.selectedOption = item
			ms.activate(item)
		}
	}
	return nil
}

func (ms *MenuScreen) setPreset(i int) {
	ms.preset = i
	if ms.onPreset != nil {
		ms.onPreset(i)
	}
}

func (ms *MenuScreen) activate(item MenuItem) {
	if ms.onSelect != nil {
		ms.onSelect(item)
	}
}

// Draw renders the menu
func (ms *MenuScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	l := NewLayout(screen.Bounds().Dx(), screen.Bounds().Dy())

	drawText(screen, "PISTON BAY", width/2, height/4, 72, titleColor)

	if len(ms.presets) > 0 {
		cfg := ms.presets[ms.preset]
		cx, cy := l.PresetLine.Center()
		drawText(screen, fmt.Sprintf("< Engine: %s >", cfg.Name), cx, cy, 20, textColor)
	}

	for i, r := range l.MenuButtons {
		item := MenuItem(i)
		drawButton(screen, item.Label(), r, item == ms.selectedOption)
	}

	drawText(screen, "Up/Down: Navigate | Left/Right: Engine | Enter: Select", width/2, height-40, 16, instructionColor)
}
