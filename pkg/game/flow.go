package game

// ScreenID identifies one of the game's screens
type ScreenID int

const (
	ScreenSplash ScreenID = iota
	ScreenMenu
	ScreenCredits
	ScreenWorkshop
	ScreenSimulation
)

func (s ScreenID) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenMenu:
		return "menu"
	case ScreenCredits:
		return "credits"
	case ScreenWorkshop:
		return "workshop"
	case ScreenSimulation:
		return "simulation"
	}
	return "unknown"
}

// FadeDuration is the length of each half (out, then in) of a transition in seconds
const FadeDuration = 0.5

// FadeDirection is which way a transition is driving alpha
type FadeDirection int

const (
	FadeOut FadeDirection = iota
	FadeIn
)

// Transition describes the single fade in progress
type Transition struct {
	Target    ScreenID
	Direction FadeDirection
}

// Flow is the screen state machine. Alpha is 1 when the current screen is
// fully visible and 0 at the bottom of a fade.
type Flow struct {
	current    ScreenID
	alpha      float64
	transition *Transition

	onSwap func(from, to ScreenID)
}

// NewFlow starts a flow on the splash screen. onSwap is called at the
// bottom of every fade, when the current screen actually changes.
func NewFlow(onSwap func(from, to ScreenID)) *Flow {
	return &Flow{
		current: ScreenSplash,
		alpha:   1,
		onSwap:  onSwap,
	}
}

// Current returns the screen that is being shown
func (f *Flow) Current() ScreenID {
	return f.current
}

// Alpha returns the fade level in [0, 1]
func (f *Flow) Alpha() float64 {
	return f.alpha
}

// Transition returns the transition in progress, or nil
func (f *Flow) Transition() *Transition {
	if f.transition == nil {
		return nil
	}
	t := *f.transition
	return &t
}

// Transitioning reports whether a fade is in progress
func (f *Flow) Transitioning() bool {
	return f.transition != nil
}

// InputEnabled reports whether the current screen should receive input.
// Input is held back while the screen is fading out.
func (f *Flow) InputEnabled() bool {
	return f.transition == nil || f.transition.Direction == FadeIn
}

// Request starts a transition to target. A transition already in progress
// is replaced, and the new fade out continues from the current alpha.
func (f *Flow) Request(target ScreenID) {
	if f.transition == nil && target == f.current {
		return
	}
	f.transition = &Transition{
		Target:    target,
		Direction: FadeOut,
	}
}

// Step drives the fade by dt seconds
func (f *Flow) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}

	t := f.transition
	if t == nil {
		return
	}

	rate := dt / FadeDuration
	switch t.Direction {
	case FadeOut:
		f.alpha -= rate
		if f.alpha > 0 {
			return
		}
		f.alpha = 0
		from := f.current
		f.current = t.Target
		t.Direction = FadeIn
		if f.onSwap != nil {
			f.onSwap(from, f.current)
		}
	case FadeIn:
		f.alpha += rate
		if f.alpha >= 1 {
			f.alpha = 1
			f.transition = nil
		}
	}
}
