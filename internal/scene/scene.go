// Package scene defines the YAML scene format for the collision sandbox and
// builds collision shapes from it. A scene declares the world bounds and a
// set of bodies (rects, circles, convex polygons) with their initial motion.
// The package depends on geometry but not on the simulation or the TUI.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/satbox/internal/core"
	"github.com/vovakirdan/satbox/internal/geometry"
)

// Kind identifies the shape kind of a scene body.
type Kind string

const (
	KindRect    Kind = "rect"
	KindCircle  Kind = "circle"
	KindPolygon Kind = "polygon"
)

// Point is a 2D coordinate in scene files.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts a scene point to a geometry vector.
func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// RectDef describes a rectangle body.
type RectDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// CircleDef describes a circle body.
type CircleDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// BodyDef describes one body in a scene file.
type BodyDef struct {
	ID     string    `yaml:"id"`
	Kind   Kind      `yaml:"kind"`
	Rect   RectDef   `yaml:"rect,omitempty"`
	Circle CircleDef `yaml:"circle,omitempty"`
	Points []Point   `yaml:"points,omitempty"`

	Anchor          Point   `yaml:"anchor,omitempty"`
	Angle           float64 `yaml:"angle,omitempty"`
	Velocity        Point   `yaml:"velocity,omitempty"`
	AngularVelocity float64 `yaml:"angular_velocity,omitempty"`
	Color           string  `yaml:"color,omitempty"`
	Static          bool    `yaml:"static,omitempty"`
}

// Bounds is the world extent; walls are placed on its edges.
type Bounds struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Scene is a parsed scene file.
type Scene struct {
	Name   string    `yaml:"name"`
	Bounds Bounds    `yaml:"bounds"`
	Bodies []BodyDef `yaml:"bodies"`

	// FilePath is set by the loader for scenes read from disk.
	FilePath string `yaml:"-"`
}

// Validate checks the scene definition without building shapes.
// Shape-level violations surface the geometry error kinds so callers can
// distinguish them from file-format problems.
func (s *Scene) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scene: missing name")
	}
	if s.Bounds.W <= 0 || s.Bounds.H <= 0 {
		return fmt.Errorf("scene %q: bounds must be positive (got %vx%v)", s.Name, s.Bounds.W, s.Bounds.H)
	}
	if len(s.Bodies) == 0 {
		return fmt.Errorf("scene %q: no bodies", s.Name)
	}

	seen := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.ID == "" {
			return fmt.Errorf("scene %q: body %d has no id", s.Name, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("scene %q: duplicate body id %q", s.Name, b.ID)
		}
		seen[b.ID] = true

		switch b.Kind {
		case KindRect:
			if b.Rect.W <= 0 || b.Rect.H <= 0 {
				return fmt.Errorf("scene %q: body %q: %w: rect dimensions must be positive", s.Name, b.ID, geometry.ErrInvalidShape)
			}
		case KindCircle:
			if b.Circle.R <= 0 {
				return fmt.Errorf("scene %q: body %q: %w: circle radius must be positive", s.Name, b.ID, geometry.ErrInvalidShape)
			}
		case KindPolygon:
			if len(b.Points) < 2 {
				return fmt.Errorf("scene %q: body %q: %w", s.Name, b.ID, geometry.ErrInsufficientVertices)
			}
		default:
			return fmt.Errorf("scene %q: body %q: unknown kind %q", s.Name, b.ID, b.Kind)
		}

		if b.Color != "" {
			if _, ok := core.ParseColor(b.Color); !ok {
				return fmt.Errorf("scene %q: body %q: unknown color %q", s.Name, b.ID, b.Color)
			}
		}
	}

	return nil
}

// BuildShape constructs the collision shape for a body definition.
func (b *BodyDef) BuildShape() (*geometry.Shape, error) {
	var (
		shape *geometry.Shape
		err   error
	)

	switch b.Kind {
	case KindRect:
		shape, err = geometry.NewRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.Anchor.Vec())
	case KindCircle:
		shape, err = geometry.NewCircle(mgl64.Vec2{b.Circle.X, b.Circle.Y}, b.Circle.R)
	case KindPolygon:
		points := make([]mgl64.Vec2, len(b.Points))
		for i, p := range b.Points {
			points[i] = p.Vec()
		}
		shape, err = geometry.NewPolygon(points, b.Anchor.Vec())
	default:
		return nil, fmt.Errorf("body %q: unknown kind %q", b.ID, b.Kind)
	}

	if err != nil {
		return nil, fmt.Errorf("body %q: %w", b.ID, err)
	}

	if b.Angle != 0 && !shape.IsCircle() {
		shape.SetAngle(b.Angle)
	}

	return shape, nil
}

// BodyColor resolves the body's display color, defaulting to white.
func (b *BodyDef) BodyColor() core.Color {
	if b.Color == "" {
		return core.ColorWhite
	}
	if c, ok := core.ParseColor(b.Color); ok {
		return c
	}
	return core.ColorWhite
}
