package engine

import "math"

const (
	// ThrottleStep is how far one throttle key press moves the pedal
	ThrottleStep = 0.1

	// HorsepowerConstant converts lb-ft at a given rpm into horsepower
	HorsepowerConstant = 5252.0

	// IdleTorque is produced even with the throttle closed
	IdleTorque = 10.0

	throttleTargetRPM = 1000.0 // rpm gained per second at full throttle
	rpmDrag           = 0.05   // fraction of rpm lost per second
	referenceStrokeMM = 86.0
	torquePerLitre    = 50.0
)

// State is the mutable runtime state of an engine
type State struct {
	RPM           float64
	Throttle      float64 // 0.0 to 1.0
	Running       bool
	CyclePosition float64   // fraction of a crank revolution, 0.0 to <1.0
	PistonPhase   []float64 // per cylinder, 0.0 to 1.0
	Torque        float64
	Horsepower    float64
}

// Engine is a single simulated engine. It is owned by the simulation screen
// and thrown away when that screen is left.
type Engine struct {
	config Config
	state  State
}

// New creates a stopped engine from a config
func New(cfg Config) *Engine {
	cfg = cfg.Normalize()
	return &Engine{
		config: cfg,
		state: State{
			PistonPhase: make([]float64, cfg.CylinderCount),
		},
	}
}

// Config returns the engine's normalized configuration
func (e *Engine) Config() Config {
	return e.config
}

// State returns a copy of the current runtime state
func (e *Engine) State() State {
	s := e.state
	s.PistonPhase = append([]float64(nil), e.state.PistonPhase...)
	return s
}

// Running reports whether the engine is turning
func (e *Engine) Running() bool {
	return e.state.Running
}

// Start fires the engine up to idle. Starting a running engine does nothing.
func (e *Engine) Start() {
	if e.state.Running {
		return
	}
	e.state.Running = true
	e.state.RPM = e.config.ECU.IdleRPM
}

// Stop kills the engine. Stopping a stopped engine does nothing.
func (e *Engine) Stop() {
	if !e.state.Running {
		return
	}
	e.state.Running = false
	e.state.RPM = 0
	e.state.Throttle = 0
	e.state.Torque = 0
	e.state.Horsepower = 0
}

// SetThrottle moves the throttle by delta, clamped to [0, 1]. It may be
// called while the engine is stopped.
func (e *Engine) SetThrottle(delta float64) {
	e.state.Throttle = clamp(e.state.Throttle+delta, 0, 1)
}

// Advance steps the engine forward by dt seconds
func (e *Engine) Advance(dt float64) {
	if !e.state.Running {
		return
	}
	if dt < 0 {
		dt = 0
	}

	s := &e.state
	ecu := e.config.ECU

	// First order lag toward a throttle proportional target
	s.RPM += (s.Throttle*throttleTargetRPM - s.RPM*rpmDrag) * dt
	s.RPM = clamp(s.RPM, ecu.IdleRPM, ecu.RevLimitRPM)

	s.CyclePosition = wrap(s.CyclePosition + (s.RPM/60)*dt)
	fillPistonPositions(s.PistonPhase, s.CyclePosition)

	s.Torque = TorqueFor(e.config, s.Throttle)
	s.Horsepower = HorsepowerFor(s.Torque, s.RPM)
}

// FiringFrequency is the number of combustion pulses per second across all
// cylinders. A four stroke cylinder fires every second revolution.
func (e *Engine) FiringFrequency() float64 {
	if !e.state.Running {
		return 0
	}
	pulses := (e.state.RPM / 60) * float64(e.config.CylinderCount)
	if e.config.StrokeType == 4 {
		pulses /= 2
	}
	return pulses
}

// OverRedline reports whether the engine is spinning past the redline
func (e *Engine) OverRedline() bool {
	return e.state.Running && e.state.RPM > e.config.ECU.RedlineRPM
}

// AspirationFactor is the torque multiplier for forced induction
func AspirationFactor(a Aspiration) float64 {
	switch a {
	case AspirationTurbo:
		return 1.3
	case AspirationSupercharged:
		return 1.2
	default:
		return 1.0
	}
}

// TorqueFor estimates torque at a throttle position. A closed throttle
// still yields IdleTorque.
func TorqueFor(cfg Config, throttle float64) float64 {
	return (cfg.DisplacementCC/1000)*(cfg.Piston.StrokeMM/referenceStrokeMM)*
		AspirationFactor(cfg.Aspiration)*throttle*torquePerLitre + IdleTorque
}

// HorsepowerFor converts torque at an rpm into horsepower
func HorsepowerFor(torque, rpm float64) float64 {
	return torque * rpm / HorsepowerConstant
}

// PistonPositions returns the rectified sine displacement of n evenly
// spaced cylinders at a crank cycle position.
func PistonPositions(cyclePosition float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	fillPistonPositions(out, cyclePosition)
	return out
}

func fillPistonPositions(dst []float64, cyclePosition float64) {
	n := float64(len(dst))
	for i := range dst {
		phase := math.Mod(float64(i)/n, 1)
		dst[i] = math.Abs(math.Sin((cyclePosition + phase) * 2 * math.Pi))
	}
}

func wrap(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v >= 1 {
		v = 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
