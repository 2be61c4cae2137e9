package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is a convex hitbox participating in SAT collision tests.
//
// A shape owns its raw construction-time vertices and derives world-space
// finalCoords through a fixed transform pipeline whenever translation, anchor
// or angle changes. Circles are encoded as two synthetic coordinates:
// finalCoords[0] is the center and finalCoords[1].X() the radius.
//
// Shapes are plain mutable values. No two goroutines may mutate or query the
// same Shape concurrently; callers running parallel broad-phase checks must
// partition shapes or synchronize externally.
type Shape struct {
	rawCoords   []mgl64.Vec2 // vertices at construction; index 0 is the translation origin
	translation mgl64.Vec2
	anchorPos   mgl64.Vec2
	angle       float64
	finalCoords []mgl64.Vec2

	isCircle bool
	isRect   bool

	// forcedAxes are extra projection axes injected for a single collision
	// call. Used to give circles their one meaningful SAT axis; recomputed
	// per call, never persisted across calls.
	forcedAxes []mgl64.Vec2
}

// NewShape creates a shape from raw coordinates with an optional anchor
// offset. The circle and rect tags are mutually exclusive; both set at once
// returns ErrConflictingShapeKind. Fewer than 2 coordinates returns
// ErrInsufficientVertices. Prefer the NewPolygon, NewRect and NewCircle
// factories for the common cases.
func NewShape(coords []mgl64.Vec2, anchor mgl64.Vec2, circle, rect bool) (*Shape, error) {
	if circle && rect {
		return nil, ErrConflictingShapeKind
	}
	if len(coords) < 2 {
		return nil, fmt.Errorf("%w (%d passed)", ErrInsufficientVertices, len(coords))
	}

	s := &Shape{
		rawCoords:   append([]mgl64.Vec2(nil), coords...),
		translation: coords[0],
		anchorPos:   anchor,
		isCircle:    circle,
		isRect:      rect,
	}
	s.recompute()
	return s, nil
}

// NewPolygon creates a convex polygon shape from the given vertices.
// At least 2 coordinates are required; 2 is permitted as a degenerate
// line-segment shape.
func NewPolygon(coords []mgl64.Vec2, anchor mgl64.Vec2) (*Shape, error) {
	return NewShape(coords, anchor, false, false)
}

// NewRect creates a rectangle shape from position and dimensions. Corners
// are generated counter-clockwise (bottom-left, bottom-right, top-right,
// top-left) so edge-adjacent pairs give correct outward normals. The rect
// tag enables the redundant-axis optimization in collision tests.
func NewRect(x, y, w, h float64, anchor mgl64.Vec2) (*Shape, error) {
	coords := []mgl64.Vec2{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
	return NewShape(coords, anchor, false, true)
}

// NewCircle creates a circle shape at center with the given radius.
// A non-positive radius returns ErrInvalidShape.
func NewCircle(center mgl64.Vec2, radius float64) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: circle radius must be positive (got %v)", ErrInvalidShape, radius)
	}
	return NewShape([]mgl64.Vec2{center, {radius, 0}}, mgl64.Vec2{}, true, false)
}

// recompute rebuilds finalCoords from rawCoords, translation, anchorPos and
// angle. The pipeline runs eagerly on every mutation and is idempotent:
// recomputing twice from the same inputs yields identical output.
//
// Transform order (not associative, so the order is load-bearing):
//  1. local coords: raw minus the first raw coordinate
//  2. anchor-relative coords: local minus anchorPos
//  3. rotation displacement: rotated anchor-relative minus unrotated
//  4. world coords: local plus translation plus rotation displacement
//  5. final coords: world minus anchorPos
func (s *Shape) recompute() {
	if s.isCircle {
		// Circles do not rotate; only the center follows translation.
		s.finalCoords = []mgl64.Vec2{s.translation, {s.rawCoords[1].X(), 0}}
		return
	}

	origin := s.rawCoords[0]
	final := make([]mgl64.Vec2, len(s.rawCoords))
	for i, raw := range s.rawCoords {
		local := raw.Sub(origin)
		anchored := local.Sub(s.anchorPos)
		disp := rotate(anchored, s.angle).Sub(anchored)
		world := local.Add(s.translation).Add(disp)
		final[i] = world.Sub(s.anchorPos)
	}
	s.finalCoords = final
}

// MoveTo moves the shape so its anchor sits at the absolute position (x, y).
func (s *Shape) MoveTo(x, y float64) {
	s.translation = mgl64.Vec2{x, y}
	s.recompute()
}

// SetAnchorPos sets the local pivot about which rotation and anchoring occur.
func (s *Shape) SetAnchorPos(anchor mgl64.Vec2) {
	s.anchorPos = anchor
	s.recompute()
}

// SetAnchorX sets the x component of the anchor position.
func (s *Shape) SetAnchorX(x float64) {
	s.anchorPos = mgl64.Vec2{x, s.anchorPos.Y()}
	s.recompute()
}

// SetAnchorY sets the y component of the anchor position.
func (s *Shape) SetAnchorY(y float64) {
	s.anchorPos = mgl64.Vec2{s.anchorPos.X(), y}
	s.recompute()
}

// SetAngle sets the rotation in radians.
func (s *Shape) SetAngle(angle float64) {
	s.angle = angle
	s.recompute()
}

// FinalCoords returns a copy of the world-space vertex list. The first entry
// is the vertex a renderer should treat as its origin anchor; the full
// ordered list is suitable for direct polygon rendering.
func (s *Shape) FinalCoords() []mgl64.Vec2 {
	return append([]mgl64.Vec2(nil), s.finalCoords...)
}

// Translation returns the current world position of the anchor.
func (s *Shape) Translation() mgl64.Vec2 { return s.translation }

// AnchorPos returns the local anchor offset.
func (s *Shape) AnchorPos() mgl64.Vec2 { return s.anchorPos }

// Angle returns the current rotation in radians.
func (s *Shape) Angle() float64 { return s.angle }

// IsCircle reports whether the shape is a circle.
func (s *Shape) IsCircle() bool { return s.isCircle }

// IsRect reports whether the shape is a rectangle.
func (s *Shape) IsRect() bool { return s.isRect }

// Center returns the circle center. Only meaningful for circles.
func (s *Shape) Center() mgl64.Vec2 { return s.finalCoords[0] }

// Radius returns the circle radius, or 0 for non-circle shapes.
func (s *Shape) Radius() float64 {
	if !s.isCircle {
		return 0
	}
	return s.finalCoords[1].X()
}
