package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layout is the arrangement of the cylinders around the crank
type Layout string

const (
	LayoutInline Layout = "inline"
	LayoutV      Layout = "v"
	LayoutBoxer  Layout = "boxer"
)

// Aspiration is how the engine is fed air
type Aspiration string

const (
	AspirationNatural      Aspiration = "naturally-aspirated"
	AspirationTurbo        Aspiration = "turbo"
	AspirationSupercharged Aspiration = "supercharged"
)

// Piston describes the geometry of a single piston
type Piston struct {
	DiameterMM float64 `json:"diameter_mm"`
	StrokeMM   float64 `json:"stroke_mm"`
	RingCount  int     `json:"ring_count"`
	Material   string  `json:"material"`
}

// Exhaust describes the exhaust system
type Exhaust struct {
	DiameterMM float64 `json:"diameter_mm"`
	HasMuffler bool    `json:"has_muffler"`
	HasTurbo   bool    `json:"has_turbo"`
}

// ECU holds the rpm limits enforced by the engine control unit
type ECU struct {
	IdleRPM     float64 `json:"idle_rpm"`
	RedlineRPM  float64 `json:"redline_rpm"`
	RevLimitRPM float64 `json:"rev_limit_rpm"`
}

// Config is the static description of an engine. It does not change while
// a simulation is running.
type Config struct {
	Name              string     `json:"name"`
	StrokeType        int        `json:"stroke_type"` // 2 or 4
	CylinderCount     int        `json:"cylinder_count"`
	Layout            Layout     `json:"layout"`
	DisplacementCC    float64    `json:"displacement_cc"`
	Piston            Piston     `json:"piston"`
	FuelType          string     `json:"fuel_type"`
	Aspiration        Aspiration `json:"aspiration"`
	ValvesPerCylinder int        `json:"valves_per_cylinder"`
	Exhaust           Exhaust    `json:"exhaust"`
	ECU               ECU        `json:"ecu"`
}

// DefaultConfig returns a plain 2.0 litre naturally aspirated inline four
func DefaultConfig() Config {
	return Config{
		Name:           "Inline-4 2.0",
		StrokeType:     4,
		CylinderCount:  4,
		Layout:         LayoutInline,
		DisplacementCC: 2000,
		Piston: Piston{
			DiameterMM: 86,
			StrokeMM:   86,
			RingCount:  3,
			Material:   "aluminium",
		},
		FuelType:          "petrol",
		Aspiration:        AspirationNatural,
		ValvesPerCylinder: 4,
		Exhaust: Exhaust{
			DiameterMM: 57,
			HasMuffler: true,
		},
		ECU: ECU{
			IdleRPM:     800,
			RedlineRPM:  6500,
			RevLimitRPM: 7500,
		},
	}
}

// Normalize returns a copy of the config with every out of range value
// pulled back into range. It never fails.
func (c Config) Normalize() Config {
	def := DefaultConfig()

	if c.StrokeType != 2 {
		c.StrokeType = 4
	}
	if c.CylinderCount < 1 {
		c.CylinderCount = 1
	}
	switch c.Layout {
	case LayoutInline, LayoutV, LayoutBoxer:
	default:
		c.Layout = LayoutInline
	}
	switch c.Aspiration {
	case AspirationNatural, AspirationTurbo, AspirationSupercharged:
	default:
		c.Aspiration = AspirationNatural
	}
	if c.DisplacementCC <= 0 {
		c.DisplacementCC = def.DisplacementCC
	}
	if c.Piston.DiameterMM <= 0 {
		c.Piston.DiameterMM = def.Piston.DiameterMM
	}
	if c.Piston.StrokeMM <= 0 {
		c.Piston.StrokeMM = def.Piston.StrokeMM
	}
	if c.Piston.RingCount < 0 {
		c.Piston.RingCount = 0
	}
	if c.ValvesPerCylinder < 0 {
		c.ValvesPerCylinder = 0
	}
	if c.Exhaust.DiameterMM < 0 {
		c.Exhaust.DiameterMM = 0
	}

	// Limits are raised, never lowered, so idle <= redline <= rev limit
	if c.ECU.IdleRPM < 0 {
		c.ECU.IdleRPM = 0
	}
	if c.ECU.RedlineRPM < c.ECU.IdleRPM {
		c.ECU.RedlineRPM = c.ECU.IdleRPM
	}
	if c.ECU.RevLimitRPM < c.ECU.RedlineRPM {
		c.ECU.RevLimitRPM = c.ECU.RedlineRPM
	}

	if c.Name == "" {
		c.Name = fmt.Sprintf("%s-%d %.1f", c.Layout, c.CylinderCount, c.DisplacementCC/1000)
	}
	return c
}

// Presets returns the engines offered in the workshop
func Presets() []Config {
	v8 := Config{
		Name:           "V8 5.7 Supercharged",
		StrokeType:     4,
		CylinderCount:  8,
		Layout:         LayoutV,
		DisplacementCC: 5700,
		Piston: Piston{
			DiameterMM: 99.5,
			StrokeMM:   92,
			RingCount:  3,
			Material:   "forged aluminium",
		},
		FuelType:          "petrol",
		Aspiration:        AspirationSupercharged,
		ValvesPerCylinder: 2,
		Exhaust:           Exhaust{DiameterMM: 76, HasMuffler: true},
		ECU:               ECU{IdleRPM: 700, RedlineRPM: 6000, RevLimitRPM: 6500},
	}
	boxer := Config{
		Name:           "Boxer-4 2.5 Turbo",
		StrokeType:     4,
		CylinderCount:  4,
		Layout:         LayoutBoxer,
		DisplacementCC: 2500,
		Piston: Piston{
			DiameterMM: 99.5,
			StrokeMM:   79,
			RingCount:  3,
			Material:   "aluminium",
		},
		FuelType:          "petrol",
		Aspiration:        AspirationTurbo,
		ValvesPerCylinder: 4,
		Exhaust:           Exhaust{DiameterMM: 70, HasMuffler: true, HasTurbo: true},
		ECU:               ECU{IdleRPM: 850, RedlineRPM: 6700, RevLimitRPM: 7200},
	}
	single := Config{
		Name:           "Single 125 Two-Stroke",
		StrokeType:     2,
		CylinderCount:  1,
		Layout:         LayoutInline,
		DisplacementCC: 125,
		Piston: Piston{
			DiameterMM: 54,
			StrokeMM:   54.5,
			RingCount:  1,
			Material:   "cast aluminium",
		},
		FuelType:          "petrol/oil mix",
		Aspiration:        AspirationNatural,
		ValvesPerCylinder: 0,
		Exhaust:           Exhaust{DiameterMM: 38},
		ECU:               ECU{IdleRPM: 1400, RedlineRPM: 11000, RevLimitRPM: 12000},
	}
	return []Config{DefaultConfig(), v8, boxer, single}
}

// LoadConfigFile reads a JSON engine description from disk. Values that are
// out of range are normalized rather than rejected.
func LoadConfigFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read engine file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid engine file '%s': %w", filename, err)
	}

	return cfg.Normalize(), nil
}
