package game

import (
	"math"
	"testing"
)

const tick = 1.0 / 60

type swap struct{ from, to ScreenID }

func recordingFlow() (*Flow, *[]swap) {
	var swaps []swap
	f := NewFlow(func(from, to ScreenID) {
		swaps = append(swaps, swap{from, to})
	})
	return f, &swaps
}

func stepFor(f *Flow, seconds float64) {
	for t := 0.0; t < seconds; t += tick {
		f.Step(tick)
	}
}

func TestFlowStartsOnSplash(t *testing.T) {
	f, _ := recordingFlow()
	if f.Current() != ScreenSplash || f.Alpha() != 1 || f.Transitioning() {
		t.Errorf("unexpected initial flow state: %v alpha %v", f.Current(), f.Alpha())
	}
}

func TestFlowFadeOutSwapFadeIn(t *testing.T) {
	f, swaps := recordingFlow()
	f.Request(ScreenMenu)

	if !f.Transitioning() || f.InputEnabled() {
		t.Fatal("expected fade out with input disabled")
	}

	f.Step(FadeDuration / 2)
	if math.Abs(f.Alpha()-0.5) > 1e-9 {
		t.Errorf("alpha halfway through fade out = %v", f.Alpha())
	}
	if f.Current() != ScreenSplash {
		t.Error("screen swapped before the fade reached zero")
	}

	f.Step(FadeDuration / 2)
	if f.Alpha() != 0 || f.Current() != ScreenMenu {
		t.Fatalf("expected swap at alpha 0, got %v alpha %v", f.Current(), f.Alpha())
	}
	if len(*swaps) != 1 || (*swaps)[0] != (swap{ScreenSplash, ScreenMenu}) {
		t.Errorf("unexpected swaps %v", *swaps)
	}
	if !f.InputEnabled() {
		t.Error("input should be enabled while fading in")
	}

	stepFor(f, FadeDuration+tick)
	if f.Alpha() != 1 || f.Transitioning() {
		t.Errorf("expected finished transition, alpha %v", f.Alpha())
	}
	if len(*swaps) != 1 {
		t.Errorf("swap fired %d times", len(*swaps))
	}
}

func TestFlowAlphaStaysInRange(t *testing.T) {
	f, _ := recordingFlow()
	f.Request(ScreenMenu)
	for i := 0; i < 200; i++ {
		f.Step(0.037)
		if f.Alpha() < 0 || f.Alpha() > 1 {
			t.Fatalf("alpha %v out of range", f.Alpha())
		}
		if i == 20 {
			f.Request(ScreenCredits)
		}
	}
}

func TestFlowRequestReplacesTransition(t *testing.T) {
	f, swaps := recordingFlow()
	f.Request(ScreenMenu)
	f.Step(FadeDuration / 2)

	f.Request(ScreenCredits)
	tr := f.Transition()
	if tr == nil || tr.Target != ScreenCredits || tr.Direction != FadeOut {
		t.Fatalf("expected replacing fade out to credits, got %+v", tr)
	}
	// the replacement continues from the current alpha
	if math.Abs(f.Alpha()-0.5) > 1e-9 {
		t.Errorf("alpha reset by replacement: %v", f.Alpha())
	}

	stepFor(f, 3*FadeDuration)
	if f.Current() != ScreenCredits {
		t.Errorf("expected credits, got %v", f.Current())
	}
	if len(*swaps) != 1 || (*swaps)[0].to != ScreenCredits {
		t.Errorf("expected a single swap to credits, got %v", *swaps)
	}
}

func TestFlowRequestDuringFadeIn(t *testing.T) {
	f, swaps := recordingFlow()
	f.Request(ScreenMenu)
	f.Step(FadeDuration)
	f.Step(FadeDuration / 4)

	f.Request(ScreenWorkshop)
	stepFor(f, 3*FadeDuration)

	if f.Current() != ScreenWorkshop || f.Transitioning() {
		t.Errorf("expected settled on workshop, got %v", f.Current())
	}
	if len(*swaps) != 2 {
		t.Errorf("expected two swaps, got %v", *swaps)
	}
}

func TestFlowRequestCurrentWhileIdle(t *testing.T) {
	f, _ := recordingFlow()
	f.Request(ScreenSplash)
	if f.Transitioning() {
		t.Error("request for the current screen should be ignored while idle")
	}
}

func TestScreenIDString(t *testing.T) {
	names := map[ScreenID]string{
		ScreenSplash:     "splash",
		ScreenMenu:       "menu",
		ScreenCredits:    "credits",
		ScreenWorkshop:   "workshop",
		ScreenSimulation: "simulation",
		ScreenID(42):     "unknown",
	}
	for id, want := range names {
		if id.String() != want {
			t.Errorf("%d.String() = %q, want %q", int(id), id.String(), want)
		}
	}
}
