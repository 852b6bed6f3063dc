package engine

import (
	"math"
	"testing"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.DisplacementCC = 2000
	cfg.Piston.StrokeMM = 86
	cfg.Aspiration = AspirationNatural
	cfg.ECU = ECU{IdleRPM: 800, RedlineRPM: 6500, RevLimitRPM: 7500}
	return cfg
}

func TestNewEngineZeroState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CylinderCount = 6
	e := New(cfg)
	s := e.State()

	if s.Running || s.RPM != 0 || s.Throttle != 0 || s.Torque != 0 || s.Horsepower != 0 || s.CyclePosition != 0 {
		t.Errorf("expected zero state, got %+v", s)
	}
	if len(s.PistonPhase) != 6 {
		t.Errorf("expected 6 piston phases, got %d", len(s.PistonPhase))
	}
}

func TestStartStop(t *testing.T) {
	e := New(scenarioConfig())

	e.Start()
	if !e.Running() || e.State().RPM != 800 {
		t.Fatalf("expected running at idle, got %+v", e.State())
	}

	e.SetThrottle(0.5)
	e.Advance(1)
	rpm := e.State().RPM

	// second start must not reset rpm
	e.Start()
	if e.State().RPM != rpm {
		t.Errorf("Start on running engine changed rpm from %v to %v", rpm, e.State().RPM)
	}

	e.Stop()
	s := e.State()
	if s.Running || s.RPM != 0 || s.Throttle != 0 {
		t.Errorf("expected stopped state, got %+v", s)
	}
	if s.Horsepower != HorsepowerFor(s.Torque, s.RPM) {
		t.Errorf("horsepower %v inconsistent with torque %v at rpm %v", s.Horsepower, s.Torque, s.RPM)
	}

	// stopping twice is a no-op
	e.Stop()
	if e.Running() {
		t.Error("engine running after double stop")
	}
}

func TestAdvanceWhileStoppedIsNoop(t *testing.T) {
	e := New(scenarioConfig())
	e.Start()
	e.SetThrottle(1)
	e.Advance(0.5)
	e.Stop()

	before := e.State()
	for _, dt := range []float64{0, 0.016, 1, 100} {
		e.Advance(dt)
	}
	after := e.State()

	if after.RPM != 0 || after.CyclePosition != before.CyclePosition || after.Torque != before.Torque {
		t.Errorf("stopped engine changed: before %+v after %+v", before, after)
	}
	for i := range before.PistonPhase {
		if before.PistonPhase[i] != after.PistonPhase[i] {
			t.Errorf("piston %d moved while stopped", i)
		}
	}
}

func TestRPMScenario(t *testing.T) {
	e := New(scenarioConfig())
	e.Start()
	e.SetThrottle(1)
	e.Advance(1)

	if got := e.State().RPM; got != 1760 {
		t.Errorf("expected rpm 1760 after one second at full throttle, got %v", got)
	}
}

func TestRevLimiter(t *testing.T) {
	cfg := scenarioConfig()
	e := New(cfg)
	e.Start()
	e.SetThrottle(1)
	e.Advance(60)

	if got := e.State().RPM; got != cfg.ECU.RevLimitRPM {
		t.Errorf("expected rpm held at rev limit %v, got %v", cfg.ECU.RevLimitRPM, got)
	}
	if !e.OverRedline() {
		t.Error("expected engine to be over the redline at the rev limit")
	}
}

func TestRPMStaysInRange(t *testing.T) {
	cfg := scenarioConfig()
	throttles := []float64{0, 0.1, 0.35, 0.5, 0.9, 1}
	deltas := []float64{0, 0.001, 1.0 / 60, 0.25, 1, 10, 1000}

	for _, th := range throttles {
		for _, dt := range deltas {
			e := New(cfg)
			e.Start()
			e.SetThrottle(th)
			for i := 0; i < 5; i++ {
				e.Advance(dt)
				s := e.State()
				if s.RPM < cfg.ECU.IdleRPM || s.RPM > cfg.ECU.RevLimitRPM {
					t.Fatalf("throttle %v dt %v: rpm %v out of range", th, dt, s.RPM)
				}
				if s.CyclePosition < 0 || s.CyclePosition >= 1 {
					t.Fatalf("throttle %v dt %v: cycle position %v out of range", th, dt, s.CyclePosition)
				}
				for j, p := range s.PistonPhase {
					if p < 0 || p > 1 {
						t.Fatalf("piston %d phase %v out of range", j, p)
					}
				}
				if s.Horsepower != s.Torque*s.RPM/5252 {
					t.Fatalf("horsepower %v != torque*rpm/5252", s.Horsepower)
				}
			}
		}
	}
}

func TestNegativeDeltaIsClamped(t *testing.T) {
	e := New(scenarioConfig())
	e.Start()
	e.SetThrottle(1)
	e.Advance(-5)

	s := e.State()
	if s.RPM != 800 || s.CyclePosition != 0 {
		t.Errorf("negative dt should not move the engine, got %+v", s)
	}
}

func TestThrottleClamp(t *testing.T) {
	e := New(scenarioConfig())
	e.SetThrottle(0.95)
	for i := 0; i < 9; i++ {
		e.SetThrottle(ThrottleStep)
	}
	if got := e.State().Throttle; got != 1.0 {
		t.Errorf("expected throttle clamped to 1.0, got %v", got)
	}

	e.SetThrottle(-5)
	if got := e.State().Throttle; got != 0 {
		t.Errorf("expected throttle clamped to 0, got %v", got)
	}
}

func TestTorque(t *testing.T) {
	cfg := scenarioConfig()
	if got := TorqueFor(cfg, 0); got != 10 {
		t.Errorf("expected idle torque of exactly 10, got %v", got)
	}

	prev := TorqueFor(cfg, 0)
	for th := 0.05; th <= 1.0; th += 0.05 {
		cur := TorqueFor(cfg, th)
		if cur < prev {
			t.Errorf("torque decreased from %v to %v at throttle %v", prev, cur, th)
		}
		prev = cur
	}

	// 2.0 litre, 86mm stroke, full throttle: 2 * 1 * 1 * 50 + 10
	if got := TorqueFor(cfg, 1); got != 110 {
		t.Errorf("expected 110 at full throttle, got %v", got)
	}
}

func TestAspirationFactor(t *testing.T) {
	tests := []struct {
		a    Aspiration
		want float64
	}{
		{AspirationNatural, 1.0},
		{AspirationTurbo, 1.3},
		{AspirationSupercharged, 1.2},
		{Aspiration("nitrous"), 1.0},
	}
	for _, tt := range tests {
		if got := AspirationFactor(tt.a); got != tt.want {
			t.Errorf("AspirationFactor(%q) = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestPistonPositionsFourCylinder(t *testing.T) {
	got := PistonPositions(0, 4)
	want := []float64{
		0,
		math.Abs(math.Sin(0.25 * 2 * math.Pi)),
		math.Abs(math.Sin(0.5 * 2 * math.Pi)),
		math.Abs(math.Sin(0.75 * 2 * math.Pi)),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cylinder %d: got %v want %v", i, got[i], want[i])
		}
	}
	if math.Abs(got[1]-1) > 1e-12 || math.Abs(got[2]) > 1e-12 || math.Abs(got[3]-1) > 1e-12 {
		t.Errorf("unexpected positions %v", got)
	}
}

func TestPistonPositionsRange(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for c := 0.0; c < 1; c += 0.013 {
			for i, p := range PistonPositions(c, n) {
				if p < 0 || p > 1 {
					t.Fatalf("n=%d cycle=%v cylinder %d: %v out of range", n, c, i, p)
				}
			}
		}
	}
}

func TestFiringFrequency(t *testing.T) {
	four := scenarioConfig()
	e := New(four)
	if e.FiringFrequency() != 0 {
		t.Error("stopped engine should not fire")
	}
	e.Start()
	// 800 rpm, 4 cylinders, four stroke: 800/60*4/2
	if got, want := e.FiringFrequency(), 800.0/60*4/2; got != want {
		t.Errorf("four stroke firing frequency %v, want %v", got, want)
	}

	two := four
	two.StrokeType = 2
	e = New(two)
	e.Start()
	if got, want := e.FiringFrequency(), 800.0/60*4; got != want {
		t.Errorf("two stroke firing frequency %v, want %v", got, want)
	}
}
