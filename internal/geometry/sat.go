package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// interval is a 1D projection of a shape onto an axis.
type interval struct {
	min, max float64
}

// axes returns the candidate separating axes of the shape: the normalized
// perpendiculars of each edge, followed by any forced axes.
//
// When sacrificeMTV is set and the shape is a rectangle, only the first half
// of the edges are used; opposite edges of a rectangle are parallel and
// produce redundant axes. This never changes the collision boolean, but the
// MTV may be picked from a reduced axis set.
//
// Circles have no edges and contribute forced axes only.
func (s *Shape) axes(sacrificeMTV bool) []mgl64.Vec2 {
	if s.isCircle {
		return s.normalizedForcedAxes()
	}

	n := len(s.finalCoords)
	count := n
	if sacrificeMTV && s.isRect {
		count = n / 2
	}

	axes := make([]mgl64.Vec2, 0, count+len(s.forcedAxes))
	for i := 0; i < count; i++ {
		p1 := s.finalCoords[i]
		p2 := s.finalCoords[(i+1)%n]
		// Normalizing keeps overlap lengths comparable across axes,
		// which the MTV selection depends on.
		axes = append(axes, normalize(perp(p1.Sub(p2))))
	}

	return append(axes, s.normalizedForcedAxes()...)
}

// normalizedForcedAxes returns the forced axes as unit vectors.
func (s *Shape) normalizedForcedAxes() []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(s.forcedAxes))
	for i, axis := range s.forcedAxes {
		out[i] = normalize(axis)
	}
	return out
}

// project projects the shape onto an axis and returns the covered interval.
// Polygons project every vertex; circles project the center and extend by
// the radius on both sides.
func (s *Shape) project(axis mgl64.Vec2) interval {
	if s.isCircle {
		center := axis.Dot(s.finalCoords[0])
		radius := s.finalCoords[1].X()
		return interval{min: center - radius, max: center + radius}
	}

	min := axis.Dot(s.finalCoords[0])
	max := min
	for _, p := range s.finalCoords[1:] {
		pos := axis.Dot(p)
		if pos > max {
			max = pos
		}
		if pos < min {
			min = pos
		}
	}
	return interval{min: min, max: max}
}

// intersect reports whether two projection intervals overlap.
//
// The comparison is half-open on the right: intervals that touch only at a
// right boundary are not considered overlapping. The signed overlapLength
// below relies on this asymmetry, so the rule must stay exact.
func intersect(l1, l2 interval) bool {
	// Left end of l1 inside l2
	if l2.min <= l1.min && l1.min < l2.max {
		return true
	}
	// Right end of l1 inside l2
	if l2.min < l1.max && l1.max <= l2.max {
		return true
	}
	// l2 completely inside l1
	if l1.min < l2.min && l1.max > l2.max {
		return true
	}
	return false
}

// overlapLength returns the signed penetration depth between two
// intersecting intervals. The magnitude is the displacement needed to
// separate them along the axis; the sign encodes the push direction.
// When one interval fully contains the other, the end requiring the
// smaller displacement wins. Returns 0 only when the intervals do not
// intersect, which callers rule out beforehand.
func overlapLength(l1, l2 interval) float64 {
	switch {
	case l2.min <= l1.min && l1.min < l2.max:
		return l2.max - l1.min
	case l2.min < l1.max && l1.max <= l2.max:
		return -(l1.max - l2.min)
	case l1.min < l2.min && l1.max > l2.max:
		if l1.max-l2.min < l2.max-l1.min {
			return -(l1.max - l2.min)
		}
		return l2.max - l1.min
	}
	return 0
}

// Collide runs the SAT algorithm between s and other.
//
// It returns whether the shapes overlap and, if so, the Minimum Translation
// Vector: the smallest displacement that moves s out of other. Callers
// resolving other instead must negate the MTV. The vector is only meaningful
// when the boolean is true.
//
// Axes are tested in order: s's axes, then other's. The first axis with no
// projection overlap proves separation and ends the test immediately.
//
// With sacrificeMTV set, rectangle axis deduplication is applied: the
// collision boolean stays exact but the MTV is not guaranteed optimal.
func (s *Shape) Collide(other *Shape, sacrificeMTV bool) (bool, mgl64.Vec2) {
	axes := append(s.axes(sacrificeMTV), other.axes(sacrificeMTV)...)

	mtvLen := math.Inf(1)
	var mtvAxis mgl64.Vec2

	for _, axis := range axes {
		l1 := s.project(axis)
		l2 := other.project(axis)

		// A single separating axis disproves collision.
		if !intersect(l1, l2) {
			return false, mgl64.Vec2{}
		}

		if overlap := overlapLength(l1, l2); math.Abs(overlap) < math.Abs(mtvLen) {
			mtvLen = overlap
			mtvAxis = axis
		}
	}

	// No axes at all (two axis-less circles without forced axes): report
	// the overlap but leave the MTV zero rather than undefined.
	if math.IsInf(mtvLen, 1) {
		return true, mgl64.Vec2{}
	}

	return true, mtvAxis.Mul(mtvLen)
}

// CollideAny tests s against each shape in order and returns the result of
// the first collision found. This is a first-match policy, not a deepest-
// penetration search: list order decides which candidate wins.
func (s *Shape) CollideAny(shapes []*Shape, sacrificeMTV bool) (bool, mgl64.Vec2) {
	for _, other := range shapes {
		if ok, mtv := s.Collide(other, sacrificeMTV); ok {
			return ok, mtv
		}
	}
	return false, mgl64.Vec2{}
}
