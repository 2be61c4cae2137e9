package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CircleCollide runs SAT between a circle and a polygon shape.
//
// A circle has no edges to derive axes from, so one axis is synthesized per
// call: the vector from the circle's closest point on the polygon boundary
// to the circle center. The closest point is found per edge by projecting
// the center onto the edge with the scalar clamped to the segment.
//
// The forced axis lives on a transient copy of the circle and is rebuilt on
// every call; the caller's shapes are never mutated, so circles can be
// reused across many polygons per frame without stale-axis bugs.
//
// Returns ErrUnsupportedOperation when circle is not circle-tagged or when
// polygon is.
func CircleCollide(circle, polygon *Shape, sacrificeMTV bool) (bool, mgl64.Vec2, error) {
	if !circle.isCircle {
		return false, mgl64.Vec2{}, fmt.Errorf("%w: first shape must be a circle", ErrUnsupportedOperation)
	}
	if polygon.isCircle {
		return false, mgl64.Vec2{}, fmt.Errorf("%w: second shape must be a polygon", ErrUnsupportedOperation)
	}

	center := circle.finalCoords[0]
	radius := circle.finalCoords[1].X()

	// Transient pseudo-shape carrying the single forced axis.
	converted := &Shape{
		rawCoords:   []mgl64.Vec2{center, {radius, 0}},
		translation: center,
		isCircle:    true,
	}
	converted.recompute()

	var least mgl64.Vec2
	leastLen := math.Inf(1)

	coords := polygon.finalCoords
	for i := range coords {
		p1 := coords[i]
		p2 := coords[(i+1)%len(coords)]

		edge := p2.Sub(p1)
		toCenter := center.Sub(p1)

		diff := clampedProject(toCenter, edge).Sub(toCenter)
		if l := diff.Len(); l < leastLen {
			least = diff
			leastLen = l
		}
	}

	converted.forcedAxes = append(converted.forcedAxes, least)

	ok, mtv := converted.Collide(polygon, sacrificeMTV)
	return ok, mtv, nil
}
