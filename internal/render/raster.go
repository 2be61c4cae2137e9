package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/satbox/internal/core"
)

// ScreenTarget rasterizes shape outlines into a screen buffer.
// It implements Renderable: polygons are drawn as closed outlines, circles
// from their two-point encoding. Coordinates are world units mapped 1:1 to
// screen cells; out-of-bounds cells are clipped by the screen itself.
type ScreenTarget struct {
	Screen *core.Screen
	Color  core.Color
	Rune   rune
	Circle bool       // interpret coords as the circle encoding
	Offset mgl64.Vec2 // world-to-screen shift applied before plotting
}

// SyncCoords draws the given coordinates onto the screen.
func (t *ScreenTarget) SyncCoords(coords []mgl64.Vec2) {
	if t.Screen == nil || len(coords) == 0 {
		return
	}

	if t.Offset != (mgl64.Vec2{}) {
		shifted := make([]mgl64.Vec2, len(coords))
		for i, c := range coords {
			shifted[i] = c.Add(t.Offset)
		}
		if t.Circle && len(coords) > 1 {
			// The radius point is a length, not a position.
			shifted[1] = coords[1]
		}
		coords = shifted
	}

	r := t.Rune
	if r == 0 {
		r = '·'
	}

	if t.Circle {
		if len(coords) < 2 {
			return
		}
		t.drawCircle(coords[0], coords[1].X(), r)
		return
	}

	n := len(coords)
	for i := 0; i < n; i++ {
		p1 := coords[i]
		p2 := coords[(i+1)%n]
		t.drawLine(p1, p2, r)
	}
}

// drawLine plots a line between two world points using Bresenham stepping.
func (t *ScreenTarget) drawLine(p1, p2 mgl64.Vec2, r rune) {
	x0, y0 := int(math.Round(p1.X())), int(math.Round(p1.Y()))
	x1, y1 := int(math.Round(p2.X())), int(math.Round(p2.Y()))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		t.Screen.SetColored(x0, y0, r, t.Color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle plots a circle outline by sampling the circumference densely
// enough that adjacent samples land on neighboring cells.
func (t *ScreenTarget) drawCircle(center mgl64.Vec2, radius float64, r rune) {
	if radius <= 0 {
		return
	}

	steps := int(math.Ceil(2 * math.Pi * radius * 2))
	if steps < 8 {
		steps = 8
	}

	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := center.X() + radius*math.Cos(angle)
		y := center.Y() + radius*math.Sin(angle)
		t.Screen.SetColored(int(math.Round(x)), int(math.Round(y)), r, t.Color)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
