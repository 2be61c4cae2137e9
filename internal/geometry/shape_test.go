package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func vecsAlmostEqual(a, b []mgl64.Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X()-b[i].X()) > epsilon || math.Abs(a[i].Y()-b[i].Y()) > epsilon {
			return false
		}
	}
	return true
}

func TestNewShapeValidation(t *testing.T) {
	tests := []struct {
		name         string
		coords       []mgl64.Vec2
		circle, rect bool
		wantErr      error
	}{
		{
			name:    "no coordinates",
			coords:  nil,
			wantErr: ErrInsufficientVertices,
		},
		{
			name:    "single coordinate",
			coords:  []mgl64.Vec2{{1, 2}},
			wantErr: ErrInsufficientVertices,
		},
		{
			name:   "two coordinates (degenerate segment allowed)",
			coords: []mgl64.Vec2{{0, 0}, {5, 0}},
		},
		{
			name:    "circle and rect tags conflict",
			coords:  []mgl64.Vec2{{0, 0}, {5, 0}, {5, 5}},
			circle:  true,
			rect:    true,
			wantErr: ErrConflictingShapeKind,
		},
		{
			name:   "triangle",
			coords: []mgl64.Vec2{{0, 0}, {5, 0}, {5, 5}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewShape(tc.coords, mgl64.Vec2{}, tc.circle, tc.rect)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("NewShape() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("NewShape() unexpected error: %v", err)
			}
		})
	}
}

func TestNewCircleValidation(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		wantOK bool
	}{
		{"positive radius", 5, true},
		{"zero radius", 0, false},
		{"negative radius", -3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCircle(mgl64.Vec2{1, 2}, tc.radius)
			if tc.wantOK {
				if err != nil {
					t.Fatalf("NewCircle() unexpected error: %v", err)
				}
				if !c.IsCircle() {
					t.Error("NewCircle() shape is not circle-tagged")
				}
				return
			}
			if !errors.Is(err, ErrInvalidShape) {
				t.Errorf("NewCircle() error = %v, expected %v", err, ErrInvalidShape)
			}
		})
	}
}

func TestCircleEncoding(t *testing.T) {
	c, err := NewCircle(mgl64.Vec2{3, 4}, 7)
	if err != nil {
		t.Fatalf("NewCircle() failed: %v", err)
	}

	coords := c.FinalCoords()
	if len(coords) != 2 {
		t.Fatalf("FinalCoords() length = %d, expected 2", len(coords))
	}
	if coords[0] != (mgl64.Vec2{3, 4}) {
		t.Errorf("center = %v, expected (3, 4)", coords[0])
	}
	if coords[1].X() != 7 {
		t.Errorf("encoded radius = %v, expected 7", coords[1].X())
	}
	if c.Radius() != 7 {
		t.Errorf("Radius() = %v, expected 7", c.Radius())
	}

	// Moving a circle moves its center, not its radius encoding.
	c.MoveTo(10, 20)
	coords = c.FinalCoords()
	if coords[0] != (mgl64.Vec2{10, 20}) {
		t.Errorf("center after MoveTo = %v, expected (10, 20)", coords[0])
	}
	if coords[1].X() != 7 {
		t.Errorf("radius after MoveTo = %v, expected 7", coords[1].X())
	}
}

func TestRectCorners(t *testing.T) {
	r, err := NewRect(2, 3, 10, 5, mgl64.Vec2{})
	if err != nil {
		t.Fatalf("NewRect() failed: %v", err)
	}
	if !r.IsRect() {
		t.Error("NewRect() shape is not rect-tagged")
	}

	want := []mgl64.Vec2{{2, 3}, {12, 3}, {12, 8}, {2, 8}}
	if got := r.FinalCoords(); !vecsAlmostEqual(got, want) {
		t.Errorf("FinalCoords() = %v, expected %v", got, want)
	}
}

func TestTransformIdempotence(t *testing.T) {
	s, err := NewRect(1, 2, 6, 4, mgl64.Vec2{3, 2})
	if err != nil {
		t.Fatalf("NewRect() failed: %v", err)
	}

	s.MoveTo(7, -3)
	s.SetAngle(0.7)
	first := s.FinalCoords()

	// Re-applying the same inputs must reproduce bit-identical output.
	s.SetAngle(0.7)
	s.MoveTo(7, -3)
	second := s.FinalCoords()

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("coord %d changed on recompute: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestTranslationInvariance(t *testing.T) {
	s, err := NewPolygon([]mgl64.Vec2{{0, 0}, {8, 0}, {4, 6}}, mgl64.Vec2{1, 1})
	if err != nil {
		t.Fatalf("NewPolygon() failed: %v", err)
	}
	s.SetAngle(0.4)
	before := s.FinalCoords()

	const dx, dy = 3.5, -2.25
	s.MoveTo(s.Translation().X()+dx, s.Translation().Y()+dy)
	after := s.FinalCoords()

	for i := range before {
		want := before[i].Add(mgl64.Vec2{dx, dy})
		if math.Abs(after[i].X()-want.X()) > epsilon || math.Abs(after[i].Y()-want.Y()) > epsilon {
			t.Errorf("coord %d = %v, expected %v", i, after[i], want)
		}
	}
}

func TestRotationIdentity(t *testing.T) {
	anchor := mgl64.Vec2{2, 3}
	coords := []mgl64.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	s, err := NewPolygon(coords, anchor)
	if err != nil {
		t.Fatalf("NewPolygon() failed: %v", err)
	}
	s.SetAngle(0)

	// Zero rotation leaves only the anchor adjustment: raw coords shifted
	// by -anchor (translation equals the first raw coordinate here).
	want := make([]mgl64.Vec2, len(coords))
	for i, c := range coords {
		want[i] = c.Sub(anchor)
	}

	if got := s.FinalCoords(); !vecsAlmostEqual(got, want) {
		t.Errorf("FinalCoords() = %v, expected %v", got, want)
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	// Unit square rotated 90 degrees about its first vertex.
	s, err := NewPolygon([]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, mgl64.Vec2{})
	if err != nil {
		t.Fatalf("NewPolygon() failed: %v", err)
	}
	s.SetAngle(math.Pi / 2)

	want := []mgl64.Vec2{{0, 0}, {0, 1}, {-1, 1}, {-1, 0}}
	if got := s.FinalCoords(); !vecsAlmostEqual(got, want) {
		t.Errorf("FinalCoords() = %v, expected %v", got, want)
	}
}

func TestAnchorSetters(t *testing.T) {
	s, err := NewRect(0, 0, 4, 4, mgl64.Vec2{})
	if err != nil {
		t.Fatalf("NewRect() failed: %v", err)
	}

	s.SetAnchorX(2)
	s.SetAnchorY(1)
	if s.AnchorPos() != (mgl64.Vec2{2, 1}) {
		t.Errorf("AnchorPos() = %v, expected (2, 1)", s.AnchorPos())
	}

	// With zero angle the anchor shifts every vertex by -anchor.
	want := []mgl64.Vec2{{-2, -1}, {2, -1}, {2, 3}, {-2, 3}}
	if got := s.FinalCoords(); !vecsAlmostEqual(got, want) {
		t.Errorf("FinalCoords() = %v, expected %v", got, want)
	}

	s.SetAnchorPos(mgl64.Vec2{})
	want = []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if got := s.FinalCoords(); !vecsAlmostEqual(got, want) {
		t.Errorf("FinalCoords() after reset = %v, expected %v", got, want)
	}
}

func TestFinalCoordsIsCopy(t *testing.T) {
	s, err := NewRect(0, 0, 4, 4, mgl64.Vec2{})
	if err != nil {
		t.Fatalf("NewRect() failed: %v", err)
	}

	coords := s.FinalCoords()
	coords[0] = mgl64.Vec2{99, 99}

	if s.FinalCoords()[0] == (mgl64.Vec2{99, 99}) {
		t.Error("mutating the returned slice must not affect the shape")
	}
}
