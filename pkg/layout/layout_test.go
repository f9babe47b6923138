package layout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/grapheditor/pkg/config"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestCirclePosition(t *testing.T) {
	c := CircleFrom(config.Default().Layout)

	tests := []struct {
		name  string
		i, k  int
		wantX float64
		wantY float64
	}{
		{"single", 0, 1, 350, 200},
		{"first of four", 0, 4, 350, 200},
		{"second of four", 1, 4, 200, 350},
		{"third of four", 2, 4, 50, 200},
		{"fourth of four", 3, 4, 200, 50},
		{"second of two", 1, 2, 50, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.Position(tt.i, tt.k)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("Position(%d, %d) = (%v, %v), want (%v, %v)", tt.i, tt.k, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCircleEqualSpacing(t *testing.T) {
	c := Circle{CenterX: 200, CenterY: 200, Radius: 150}
	const k = 7
	for i := range k {
		x, y := c.Position(i, k)
		if r := math.Hypot(x-200, y-200); !near(r, 150) {
			t.Errorf("node %d radius = %v, want 150", i, r)
		}
		angle := math.Atan2(y-200, x-200)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		want := float64(i) * 2 * math.Pi / k
		if math.Abs(angle-want) > 1e-6 {
			t.Errorf("node %d angle = %v, want %v", i, angle, want)
		}
	}
}

func TestDiagonal(t *testing.T) {
	for i := range 5 {
		x, y := Diagonal(i, 50)
		if x != float64(i)*50 || y != x {
			t.Errorf("Diagonal(%d) = (%v, %v)", i, x, y)
		}
	}
}

func TestCanvasRandom(t *testing.T) {
	c := CanvasFrom(config.Default().Generate)
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		x, y := c.Random(r)
		if !c.Contains(x, y) {
			t.Fatalf("Random() = (%v, %v) outside %+v", x, y, c)
		}
	}
}

func TestCanvasContains(t *testing.T) {
	c := Canvas{Width: 400, Height: 400}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{399.99, 399.99, true},
		{400, 0, false},
		{0, 400, false},
		{-0.1, 10, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
