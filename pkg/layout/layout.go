// Package layout computes node positions for the editor's bulk operations:
// the circular arrangement used by align_graph, the diagonal used by the
// complete-graph generator and uniform random placement.
package layout

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/grapheditor/pkg/config"
)

// Circle places nodes at equal angular spacing around a center.
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// CircleFrom builds a Circle from layout configuration.
func CircleFrom(c config.Layout) Circle {
	return Circle{CenterX: c.CenterX, CenterY: c.CenterY, Radius: c.Radius}
}

// Position returns the coordinates of the i-th of k nodes. Node 0 sits at
// angle 0, to the right of the center; angles grow by 2π/k.
func (c Circle) Position(i, k int) (x, y float64) {
	angle := float64(i) * (2 * math.Pi / float64(k))
	return c.CenterX + c.Radius*math.Cos(angle), c.CenterY + c.Radius*math.Sin(angle)
}

// Diagonal returns (i*spacing, i*spacing).
func Diagonal(i int, spacing float64) (x, y float64) {
	v := float64(i) * spacing
	return v, v
}

// Canvas is the rectangle [0, Width) × [0, Height).
type Canvas struct {
	Width  float64
	Height float64
}

// CanvasFrom builds a Canvas from generator configuration.
func CanvasFrom(g config.Generate) Canvas {
	return Canvas{Width: g.Width, Height: g.Height}
}

// Random returns a uniformly distributed point inside the canvas.
func (c Canvas) Random(r *rand.Rand) (x, y float64) {
	return r.Float64() * c.Width, r.Float64() * c.Height
}

// Contains reports whether (x, y) lies inside the canvas.
func (c Canvas) Contains(x, y float64) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}
