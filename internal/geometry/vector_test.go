package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPerp(t *testing.T) {
	tests := []struct {
		name     string
		v        mgl64.Vec2
		expected mgl64.Vec2
	}{
		{"x axis", mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}},
		{"y axis", mgl64.Vec2{0, 1}, mgl64.Vec2{-1, 0}},
		{"diagonal", mgl64.Vec2{3, 4}, mgl64.Vec2{-4, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := perp(tc.v); got != tc.expected {
				t.Errorf("perp(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestPerpOrthogonal(t *testing.T) {
	v := mgl64.Vec2{3.7, -2.1}
	if dot := v.Dot(perp(v)); dot != 0 {
		t.Errorf("v.Dot(perp(v)) = %v, expected 0", dot)
	}
}

func TestNormalize(t *testing.T) {
	v := normalize(mgl64.Vec2{3, 4})
	if math.Abs(v.Len()-1) > epsilon {
		t.Errorf("normalize length = %v, expected 1", v.Len())
	}
	if math.Abs(v.X()-0.6) > epsilon || math.Abs(v.Y()-0.8) > epsilon {
		t.Errorf("normalize(3, 4) = %v, expected (0.6, 0.8)", v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	// The zero vector must normalize to itself, never NaN: forced axes can
	// legitimately be zero when a circle center sits on a polygon edge.
	v := normalize(mgl64.Vec2{})
	if v != (mgl64.Vec2{}) {
		t.Errorf("normalize(zero) = %v, expected zero vector", v)
	}
}

func TestClampedProject(t *testing.T) {
	edge := mgl64.Vec2{10, 0}

	tests := []struct {
		name     string
		v        mgl64.Vec2
		expected mgl64.Vec2
	}{
		{"inside segment", mgl64.Vec2{4, 3}, mgl64.Vec2{4, 0}},
		{"beyond far end clamps", mgl64.Vec2{15, 2}, mgl64.Vec2{10, 0}},
		{"behind near end clamps", mgl64.Vec2{-5, 2}, mgl64.Vec2{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := clampedProject(tc.v, edge)
			if math.Abs(got.X()-tc.expected.X()) > epsilon || math.Abs(got.Y()-tc.expected.Y()) > epsilon {
				t.Errorf("clampedProject(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestClampedProjectZeroEdge(t *testing.T) {
	if got := clampedProject(mgl64.Vec2{1, 1}, mgl64.Vec2{}); got != (mgl64.Vec2{}) {
		t.Errorf("clampedProject onto zero edge = %v, expected zero vector", got)
	}
}

func TestRotate(t *testing.T) {
	got := rotate(mgl64.Vec2{1, 0}, math.Pi/2)
	if math.Abs(got.X()) > epsilon || math.Abs(got.Y()-1) > epsilon {
		t.Errorf("rotate((1,0), pi/2) = %v, expected (0, 1)", got)
	}
}
