// Package geometry implements convex 2D collision detection using the
// Separating Axis Theorem (SAT). Shapes carry a layered transform pipeline
// (translation, anchor offset, rotation) and collision queries report the
// Minimum Translation Vector needed to separate overlapping shapes.
// The package contains pure math with no platform dependencies, so game
// logic built on it stays testable.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// perp returns the perpendicular of v, rotated 90 degrees counter-clockwise.
func perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-v.Y(), v.X()}
}

// normalize returns the unit vector of v.
// The zero vector normalizes to itself rather than NaN, so degenerate
// edges and forced axes stay harmless in projection loops.
func normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec2{}
	}
	return v.Mul(1 / l)
}

// clampedProject projects v1 onto v2, clamping the scalar projection to
// [0, 1] so the result stays on the segment spanned by v2 rather than its
// infinite extension. A zero-length v2 projects everything to the zero vector.
func clampedProject(v1, v2 mgl64.Vec2) mgl64.Vec2 {
	lenSq := v2.Dot(v2)
	if lenSq == 0 {
		return mgl64.Vec2{}
	}
	t := mgl64.Clamp(v1.Dot(v2)/lenSq, 0, 1)
	return v2.Mul(t)
}

// rotate returns v rotated by angle radians about the origin.
func rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec2{
		v.X()*cos - v.Y()*sin,
		v.X()*sin + v.Y()*cos,
	}
}
