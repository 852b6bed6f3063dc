package background

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	paperColor = color.RGBA{12, 24, 44, 255}
	minorColor = color.RGBA{22, 40, 66, 255}
	majorColor = color.RGBA{36, 62, 98, 255}
	specColor  = color.RGBA{30, 52, 84, 255}
)

// Generator creates blueprint style backgrounds
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Lines returns the x and y positions of the grid lines for a cell size,
// and which of them are major lines (every fifth).
func (g *Generator) Lines(cell int) (xs, ys []int, major func(pos int) bool) {
	if cell <= 0 {
		cell = 1
	}
	for x := 0; x < g.Width; x += cell {
		xs = append(xs, x)
	}
	for y := 0; y < g.Height; y += cell {
		ys = append(ys, y)
	}
	return xs, ys, func(pos int) bool { return (pos/cell)%5 == 0 }
}

// GenerateGrid draws a blueprint grid with a light speckle so it does not
// look flat
func (g *Generator) GenerateGrid(cell int, seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(paperColor)

	for i := 0; i < g.Width*g.Height/400; i++ {
		img.Set(rng.Intn(g.Width), rng.Intn(g.Height), specColor)
	}

	xs, ys, major := g.Lines(cell)
	for _, x := range xs {
		clr := minorColor
		if major(x) {
			clr = majorColor
		}
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(g.Height), 1, clr, false)
	}
	for _, y := range ys {
		clr := minorColor
		if major(y) {
			clr = majorColor
		}
		vector.StrokeLine(img, 0, float32(y), float32(g.Width), float32(y), 1, clr, false)
	}

	return img
}
