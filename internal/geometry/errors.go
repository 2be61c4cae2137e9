package geometry

import "errors"

// Shape construction and misuse errors. All are surfaced synchronously at
// the violating call and never recovered internally; they signal programmer
// errors, not runtime conditions.
var (
	// ErrInsufficientVertices is returned when a polygon is constructed
	// with fewer than 2 coordinates.
	ErrInsufficientVertices = errors.New("geometry: polygon needs at least 2 coordinates")

	// ErrConflictingShapeKind is returned when a shape is tagged as both
	// a circle and a rectangle.
	ErrConflictingShapeKind = errors.New("geometry: shape cannot be both a circle and a rectangle")

	// ErrInvalidShape is returned for shape parameters that cannot form a
	// valid shape, such as a non-positive circle radius.
	ErrInvalidShape = errors.New("geometry: invalid shape parameters")

	// ErrUnsupportedOperation is returned when an operation is invoked on
	// a shape kind it is not meaningful for.
	ErrUnsupportedOperation = errors.New("geometry: operation not supported for this shape kind")
)
