package ui

// Rect is an axis aligned region of the screen
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle of the rect
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// MenuItem is one of the main menu buttons
type MenuItem int

const (
	MenuWorkshop MenuItem = iota
	MenuCredits
	MenuQuit
	menuItemCount
)

func (m MenuItem) Label() string {
	switch m {
	case MenuWorkshop:
		return "Workshop"
	case MenuCredits:
		return "Credits"
	case MenuQuit:
		return "Quit"
	}
	return ""
}

// Layout holds every hit-testable and drawn region for one surface size.
// It is recomputed whenever the surface changes size.
type Layout struct {
	Width, Height int

	MenuButtons [menuItemCount]Rect
	PresetLine  Rect
	CreditsBack Rect
	StopButton  Rect
	EngineArea  Rect
	HUD         Rect
}

// NewLayout derives the layout for a surface of w by h pixels
func NewLayout(w, h int) Layout {
	width, height := float64(w), float64(h)
	l := Layout{Width: w, Height: h}

	buttonWidth := 300.0
	buttonHeight := 50.0
	optionSpacing := 70.0
	buttonX := width/2 - buttonWidth/2
	optionY := height / 2
	for i := range l.MenuButtons {
		l.MenuButtons[i] = Rect{buttonX, optionY + float64(i)*optionSpacing, buttonWidth, buttonHeight}
	}
	l.PresetLine = Rect{width/2 - 300, optionY - 70, 600, 40}

	l.CreditsBack = Rect{width/2 - 100, height - 110, 200, 50}

	hudWidth := 260.0
	l.HUD = Rect{width - hudWidth - 20, 20, hudWidth, height - 40}
	l.StopButton = Rect{l.HUD.X + 20, l.HUD.Y + l.HUD.H - 70, hudWidth - 40, 50}
	l.EngineArea = Rect{20, 20, width - hudWidth - 60, height - 40}

	return l
}

// MenuItemAt returns the menu button under a point
func (l Layout) MenuItemAt(x, y float64) (MenuItem, bool) {
	for i, r := range l.MenuButtons {
		if r.Contains(x, y) {
			return MenuItem(i), true
		}
	}
	return 0, false
}
