// Package dyno runs an engine on a virtual dynamometer without opening a
// window and renders the pull as a terminal report.
package dyno

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/guptarohit/asciigraph"
)

// Plan describes a dyno pull
type Plan struct {
	Duration float64                           // seconds
	Step     float64                           // seconds per simulation step
	Throttle func(t, duration float64) float64 // throttle position at time t
}

// Sample is one recorded step of a pull
type Sample struct {
	Time       float64
	RPM        float64
	Throttle   float64
	Torque     float64
	Horsepower float64
}

// RampThrottle opens the throttle linearly over the first half of the pull
// and holds it wide open for the rest.
func RampThrottle(t, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	ramp := t / (duration / 2)
	if ramp > 1 {
		return 1
	}
	if ramp < 0 {
		return 0
	}
	return ramp
}

// DefaultPlan is a twenty second ramp at sixty steps per second
func DefaultPlan() Plan {
	return Plan{Duration: 20, Step: 1.0 / 60, Throttle: RampThrottle}
}

// Run performs a pull on a fresh engine. The throttle is driven through
// SetThrottle, so it is clamped exactly as keyboard input is.
func Run(cfg engine.Config, plan Plan) []Sample {
	if plan.Step <= 0 {
		plan.Step = DefaultPlan().Step
	}
	if plan.Throttle == nil {
		plan.Throttle = RampThrottle
	}

	e := engine.New(cfg)
	e.Start()

	steps := int(math.Round(plan.Duration / plan.Step))
	samples := make([]Sample, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) * plan.Step
		e.SetThrottle(plan.Throttle(t, plan.Duration) - e.State().Throttle)
		e.Advance(plan.Step)

		s := e.State()
		samples = append(samples, Sample{
			Time:       t,
			RPM:        s.RPM,
			Throttle:   s.Throttle,
			Torque:     s.Torque,
			Horsepower: s.Horsepower,
		})
	}
	return samples
}

// Peak returns the samples with the highest torque and horsepower
func Peak(samples []Sample) (torque, horsepower Sample) {
	for i, s := range samples {
		if i == 0 || s.Torque > torque.Torque {
			torque = s
		}
		if i == 0 || s.Horsepower > horsepower.Horsepower {
			horsepower = s
		}
	}
	return torque, horsepower
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Report renders the configuration, peak figures and rpm/horsepower charts
func Report(cfg engine.Config, samples []Sample) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DYNO: " + cfg.Name))
	b.WriteString("\n")

	rows := [][]string{
		{"Layout", fmt.Sprintf("%s-%d, %d-stroke", cfg.Layout, cfg.CylinderCount, cfg.StrokeType)},
		{"Displacement", fmt.Sprintf("%.0f cc", cfg.DisplacementCC)},
		{"Bore x Stroke", fmt.Sprintf("%.1f x %.1f mm", cfg.Piston.DiameterMM, cfg.Piston.StrokeMM)},
		{"Aspiration", string(cfg.Aspiration)},
		{"ECU", fmt.Sprintf("idle %.0f / redline %.0f / limit %.0f rpm", cfg.ECU.IdleRPM, cfg.ECU.RedlineRPM, cfg.ECU.RevLimitRPM)},
	}

	if len(samples) > 0 {
		pt, ph := Peak(samples)
		last := samples[len(samples)-1]
		rows = append(rows,
			[]string{"Peak torque", fmt.Sprintf("%.1f @ %.0f rpm", pt.Torque, pt.RPM)},
			[]string{"Peak power", fmt.Sprintf("%.1f hp @ %.0f rpm", ph.Horsepower, ph.RPM)},
			[]string{"Final rpm", fmt.Sprintf("%.0f after %.1fs", last.RPM, last.Time)},
		)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Item", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	if len(samples) < 2 {
		return b.String()
	}

	rpm := make([]float64, len(samples))
	hp := make([]float64, len(samples))
	for i, s := range samples {
		rpm[i] = s.RPM
		hp[i] = s.Horsepower
	}

	b.WriteString("\n")
	b.WriteString(asciigraph.Plot(downsample(rpm, 72), asciigraph.Height(10), asciigraph.Width(72), asciigraph.Caption("RPM")))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(downsample(hp, 72), asciigraph.Height(8), asciigraph.Width(72), asciigraph.Caption("Horsepower")))
	b.WriteString("\n")

	return b.String()
}

// downsample keeps at most n evenly spaced points
func downsample(series []float64, n int) []float64 {
	if len(series) <= n || n < 2 {
		return series
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = series[i*(len(series)-1)/(n-1)]
	}
	return out
}
