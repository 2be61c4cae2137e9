// Package render bridges collision shapes to display surfaces. The geometry
// core stays renderer-agnostic; anything that can consume an ordered list of
// world-space vertices can display a shape. The package also provides a
// terminal rasterizer drawing shape outlines into a core.Screen buffer.
package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/satbox/internal/geometry"
)

// Renderable consumes final world-space vertex coordinates of a shape.
// The first coordinate is the origin anchor; the full ordered list is
// suitable for direct polygon rendering without further transformation.
// For circles, the list is the two-point encoding: center then (radius, 0).
type Renderable interface {
	SyncCoords(coords []mgl64.Vec2)
}

// ShapeView couples a Shape to a Renderable by composition. After any shape
// mutation, Sync pushes the recomputed coordinates to the display target.
type ShapeView struct {
	Shape  *geometry.Shape
	Target Renderable
}

// NewShapeView wraps a shape with its display target.
func NewShapeView(shape *geometry.Shape, target Renderable) *ShapeView {
	return &ShapeView{Shape: shape, Target: target}
}

// Sync pushes the shape's current final coordinates to the target.
func (v *ShapeView) Sync() {
	if v.Target == nil {
		return
	}
	v.Target.SyncCoords(v.Shape.FinalCoords())
}
