package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	blockColor  = color.RGBA{90, 110, 130, 255}
	pistonColor = color.RGBA{200, 200, 210, 255}
	rodColor    = color.RGBA{150, 150, 160, 255}
	crankColor  = color.RGBA{70, 70, 80, 255}
	pinColor    = color.RGBA{255, 200, 50, 255}
	firingColor = color.RGBA{255, 120, 40, 255}
)

// cylinderPlacement is where a cylinder sits and which way it points.
// Angle 0 points straight up; positive angles lean clockwise.
type cylinderPlacement struct {
	crankX, crankY float64
	angle          float64
}

// placeCylinders arranges the cylinders in area by layout. V and boxer
// engines put two cylinders on each crank throw.
func placeCylinders(area Rect, cfg engine.Config) []cylinderPlacement {
	n := cfg.CylinderCount
	out := make([]cylinderPlacement, n)

	throws := n
	if cfg.Layout != engine.LayoutInline {
		throws = (n + 1) / 2
	}
	spacing := area.W / float64(throws)

	crankY := area.Y + area.H*0.75
	if cfg.Layout == engine.LayoutBoxer {
		crankY = area.Y + area.H/2
	}

	for i := range out {
		throw := i
		angle := 0.0
		switch cfg.Layout {
		case engine.LayoutV:
			throw = i / 2
			angle = math.Pi / 4
			if i%2 == 0 {
				angle = -angle
			}
		case engine.LayoutBoxer:
			throw = i / 2
			angle = math.Pi / 2
			if i%2 == 0 {
				angle = -angle
			}
		}
		out[i] = cylinderPlacement{
			crankX: area.X + spacing*(float64(throw)+0.5),
			crankY: crankY,
			angle:  angle,
		}
	}
	return out
}

// DrawEngine draws a cutaway of the engine. Each piston travels along its
// bore by its phase; a phase of 1 is top dead centre.
func DrawEngine(screen *ebiten.Image, area Rect, cfg engine.Config, state engine.State) {
	placements := placeCylinders(area, cfg)
	if len(placements) == 0 {
		return
	}

	throws := len(placements)
	if cfg.Layout != engine.LayoutInline {
		throws = (len(placements) + 1) / 2
	}
	slot := area.W / float64(throws)

	// geometry is scaled from the slot, the bore/stroke ratio keeps its shape
	reach := area.H * 0.55
	if cfg.Layout == engine.LayoutBoxer {
		reach = math.Min(area.H*0.45, slot*1.2)
	}
	bore := math.Min(slot*0.5, reach*0.45)
	travel := bore * cfg.Piston.StrokeMM / cfg.Piston.DiameterMM * 0.8
	crankRadius := travel / 2
	rodLength := reach - travel - bore*0.6
	if rodLength < crankRadius*2 {
		rodLength = crankRadius * 2
	}
	deckDistance := crankRadius + rodLength + travel + bore*0.3

	for i, p := range placements {
		phase := 0.0
		if i < len(state.PistonPhase) {
			phase = state.PistonPhase[i]
		}
		ux, uy := math.Sin(p.angle), -math.Cos(p.angle)
		px, py := -uy, ux

		// bore walls and head
		near := crankRadius + rodLength*0.6
		far := deckDistance
		for _, side := range []float64{-1, 1} {
			ox, oy := px*side*bore/2, py*side*bore/2
			vector.StrokeLine(screen,
				float32(p.crankX+ux*near+ox), float32(p.crankY+uy*near+oy),
				float32(p.crankX+ux*far+ox), float32(p.crankY+uy*far+oy),
				3, blockColor, true)
		}
		vector.StrokeLine(screen,
			float32(p.crankX+ux*far-px*bore/2), float32(p.crankY+uy*far-py*bore/2),
			float32(p.crankX+ux*far+px*bore/2), float32(p.crankY+uy*far+py*bore/2),
			4, blockColor, true)

		// piston crown distance from the crank centre
		crown := crankRadius + rodLength + travel*phase
		pistonHeight := bore * 0.5
		pistonMid := crown - pistonHeight/2

		// crank pin, offset across the bore so the rod swings
		swing := math.Sqrt(math.Max(0, 1-phase*phase)) * crankRadius
		if math.Mod(state.CyclePosition+float64(i)/float64(len(placements)), 1) >= 0.5 {
			swing = -swing
		}
		pinX := p.crankX + px*swing + ux*(crankRadius*(2*phase-1))
		pinY := p.crankY + py*swing + uy*(crankRadius*(2*phase-1))

		vector.StrokeLine(screen,
			float32(pinX), float32(pinY),
			float32(p.crankX+ux*pistonMid), float32(p.crankY+uy*pistonMid),
			4, rodColor, true)

		vector.StrokeLine(screen,
			float32(p.crankX+ux*pistonMid-px*(bore/2-3)), float32(p.crankY+uy*pistonMid-py*(bore/2-3)),
			float32(p.crankX+ux*pistonMid+px*(bore/2-3)), float32(p.crankY+uy*pistonMid+py*(bore/2-3)),
			float32(pistonHeight), pistonColor, true)

		// combustion flash near top dead centre
		if state.Running && phase > 0.97 {
			gap := (far - crown) / 2
			vector.DrawFilledCircle(screen,
				float32(p.crankX+ux*(crown+gap)), float32(p.crankY+uy*(crown+gap)),
				float32(math.Max(gap, 3)), firingColor, true)
		}

		vector.StrokeCircle(screen, float32(p.crankX), float32(p.crankY), float32(crankRadius), 3, crankColor, true)
		vector.DrawFilledCircle(screen, float32(pinX), float32(pinY), 4, pinColor, true)
	}

	// crankshaft through every throw
	first, last := placements[0], placements[len(placements)-1]
	vector.StrokeLine(screen,
		float32(first.crankX-slot/3), float32(first.crankY),
		float32(last.crankX+slot/3), float32(last.crankY),
		6, crankColor, true)
}
