// Package sim runs the fixed-tick collision sandbox simulation. It owns the
// scene bodies, integrates their motion through the shape setters, dispatches
// pairwise collision queries and applies MTV resolution. Pure logic with no
// TUI dependencies, matching the platform's game/engine split.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/satbox/internal/core"
	"github.com/vovakirdan/satbox/internal/geometry"
	"github.com/vovakirdan/satbox/internal/scene"
)

// Body is a shape participating in the simulation.
type Body struct {
	ID              string
	Shape           *geometry.Shape
	Color           core.Color
	Static          bool
	Velocity        mgl64.Vec2
	AngularVelocity float64
}

// CollisionEvent records one resolved collision during a tick.
type CollisionEvent struct {
	A, B string
	MTV  mgl64.Vec2
}

// State is a snapshot of simulation status for the platform layer.
type State struct {
	Tick       uint64
	Collisions uint64
	Paused     bool
	Resolve    bool
	Selected   string
	LastMTV    mgl64.Vec2
	HasLastMTV bool
}

// World owns the bodies of one scene and advances them tick by tick.
// A World is single-goroutine: one SSH session or terminal owns one World.
type World struct {
	// SacrificeMTV applies rectangle axis deduplication to every collision
	// query. Boolean results stay exact; MTVs may be suboptimal.
	SacrificeMTV bool

	scn    scene.Scene
	cfg    core.RuntimeConfig
	rng    *rand.Rand
	bodies []*Body
	walls  []*geometry.Shape

	selected   int
	resolve    bool
	paused     bool
	tick       uint64
	collisions uint64
	lastEvents []CollisionEvent
}

// NewWorld builds a world from a validated scene.
func NewWorld(scn scene.Scene, cfg core.RuntimeConfig) (*World, error) {
	w := &World{
		scn:     scn,
		cfg:     cfg,
		resolve: true,
	}
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset rebuilds all bodies from the scene definition. Dynamic velocities
// get a small deterministic jitter from the configured seed.
func (w *World) Reset() error {
	w.rng = rand.New(rand.NewSource(w.cfg.Seed))

	bodies := make([]*Body, 0, len(w.scn.Bodies))
	for i := range w.scn.Bodies {
		def := &w.scn.Bodies[i]
		shape, err := def.BuildShape()
		if err != nil {
			return fmt.Errorf("sim: %w", err)
		}

		b := &Body{
			ID:              def.ID,
			Shape:           shape,
			Color:           def.BodyColor(),
			Static:          def.Static,
			Velocity:        def.Velocity.Vec(),
			AngularVelocity: def.AngularVelocity,
		}
		if !b.Static && b.Velocity != (mgl64.Vec2{}) {
			jitter := 1 + (w.rng.Float64()-0.5)*0.2
			b.Velocity = b.Velocity.Mul(jitter)
		}
		bodies = append(bodies, b)
	}

	w.bodies = bodies
	w.walls = boundaryWalls(w.scn.Bounds)
	w.selected = 0
	w.tick = 0
	w.collisions = 0
	w.lastEvents = nil
	w.paused = false
	return nil
}

// boundaryWalls builds four thin static rects just inside the scene bounds.
func boundaryWalls(b scene.Bounds) []*geometry.Shape {
	const thickness = 1.0
	defs := [][4]float64{
		{0, -thickness, b.W, thickness}, // top
		{0, b.H, b.W, thickness},        // bottom
		{-thickness, 0, thickness, b.H}, // left
		{b.W, 0, thickness, b.H},        // right
	}

	walls := make([]*geometry.Shape, 0, len(defs))
	for _, s := range defs {
		wall, err := geometry.NewRect(s[0], s[1], s[2], s[3], mgl64.Vec2{})
		if err != nil {
			continue // thickness is constant and positive, cannot happen
		}
		walls = append(walls, wall)
	}
	return walls
}

// Bodies returns the simulation bodies for rendering.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Selected returns the currently selected body, or nil for an empty world.
func (w *World) Selected() *Body {
	if len(w.bodies) == 0 {
		return nil
	}
	return w.bodies[w.selected]
}

// Events returns the collisions resolved during the last tick.
func (w *World) Events() []CollisionEvent {
	return w.lastEvents
}

// State returns a snapshot of the simulation status.
func (w *World) State() State {
	st := State{
		Tick:       w.tick,
		Collisions: w.collisions,
		Paused:     w.paused,
		Resolve:    w.resolve,
	}
	if sel := w.Selected(); sel != nil {
		st.Selected = sel.ID
	}
	if n := len(w.lastEvents); n > 0 {
		st.LastMTV = w.lastEvents[n-1].MTV
		st.HasLastMTV = true
	}
	return st
}

// Step advances the simulation by one tick, applying the given input first.
// A restart consumes the whole tick: the returned state reflects the freshly
// rebuilt scene.
func (w *World) Step(in core.InputFrame) State {
	if restarted := w.handleInput(in); restarted {
		return w.State()
	}

	if w.paused {
		return w.State()
	}
	w.tick++

	// Integrate motion through the shape setters; every mutation runs the
	// full transform pipeline.
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		if b.Velocity != (mgl64.Vec2{}) {
			pos := b.Shape.Translation().Add(b.Velocity)
			b.Shape.MoveTo(pos.X(), pos.Y())
		}
		if b.AngularVelocity != 0 && !b.Shape.IsCircle() {
			b.Shape.SetAngle(b.Shape.Angle() + b.AngularVelocity)
		}
	}

	w.lastEvents = w.lastEvents[:0]

	// Narrow phase: every dynamic body against walls and every other body.
	for i, b := range w.bodies {
		if b.Static {
			continue
		}

		for wi, wall := range w.walls {
			if ok, mtv := CollidePair(b.Shape, wall, w.SacrificeMTV); ok {
				w.recordHit(b, fmt.Sprintf("wall-%d", wi), mtv)
			}
		}

		for j, other := range w.bodies {
			if i == j {
				continue
			}
			if ok, mtv := CollidePair(b.Shape, other.Shape, w.SacrificeMTV); ok {
				w.recordHit(b, other.ID, mtv)
			}
		}
	}

	return w.State()
}

// recordHit counts a collision and, when resolution is enabled, pushes the
// body out along the MTV and reflects its velocity off the contact normal.
func (w *World) recordHit(b *Body, otherID string, mtv mgl64.Vec2) {
	w.collisions++
	w.lastEvents = append(w.lastEvents, CollisionEvent{A: b.ID, B: otherID, MTV: mtv})

	if !w.resolve {
		return
	}

	pos := b.Shape.Translation().Add(mtv)
	b.Shape.MoveTo(pos.X(), pos.Y())

	if l := mtv.Len(); l > 0 {
		normal := mtv.Mul(1 / l)
		// Reflect only when moving into the obstacle.
		if into := b.Velocity.Dot(normal); into < 0 {
			b.Velocity = b.Velocity.Sub(normal.Mul(2 * into))
		}
	}
}

// CollidePair dispatches a collision query based on shape kinds. The MTV
// always moves the first shape out of the second.
func CollidePair(a, b *geometry.Shape, sacrificeMTV bool) (bool, mgl64.Vec2) {
	switch {
	case a.IsCircle() && b.IsCircle():
		return circlePair(a, b)
	case a.IsCircle():
		ok, mtv, err := geometry.CircleCollide(a, b, sacrificeMTV)
		if err != nil {
			return false, mgl64.Vec2{}
		}
		return ok, mtv
	case b.IsCircle():
		// Query from the circle's side, then negate to move a instead.
		ok, mtv, err := geometry.CircleCollide(b, a, sacrificeMTV)
		if err != nil {
			return false, mgl64.Vec2{}
		}
		return ok, mtv.Mul(-1)
	default:
		return a.Collide(b, sacrificeMTV)
	}
}

// circlePair handles circle-vs-circle overlap directly: SAT needs no axes
// here, the center line is the only candidate.
func circlePair(a, b *geometry.Shape) (bool, mgl64.Vec2) {
	diff := a.Center().Sub(b.Center())
	dist := diff.Len()
	pen := a.Radius() + b.Radius() - dist

	if pen <= 0 {
		return false, mgl64.Vec2{}
	}
	if dist == 0 {
		// Coincident centers: push along x by the full overlap.
		return true, mgl64.Vec2{pen, 0}
	}
	return true, diff.Mul(pen / dist)
}

// handleInput applies sandbox actions to the world. Returns true when the
// scene was restarted.
func (w *World) handleInput(in core.InputFrame) bool {
	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if in.Has(core.ActionResolve) {
		w.resolve = !w.resolve
	}
	if in.Has(core.ActionRestart) {
		// Reset cannot fail here: the scene already built once.
		_ = w.Reset()
		return true
	}
	if in.Has(core.ActionCycle) && len(w.bodies) > 0 {
		w.selected = (w.selected + 1) % len(w.bodies)
	}

	sel := w.Selected()
	if sel == nil || w.paused {
		return false
	}

	const nudge = 1.0
	var d mgl64.Vec2
	if in.Has(core.ActionMoveLeft) {
		d[0] -= nudge
	}
	if in.Has(core.ActionMoveRight) {
		d[0] += nudge
	}
	if in.Has(core.ActionMoveUp) {
		d[1] -= nudge
	}
	if in.Has(core.ActionMoveDown) {
		d[1] += nudge
	}
	if d != (mgl64.Vec2{}) {
		pos := sel.Shape.Translation().Add(d)
		sel.Shape.MoveTo(pos.X(), pos.Y())
	}

	const rotStep = 0.1
	if !sel.Shape.IsCircle() {
		if in.Has(core.ActionRotateCW) {
			sel.Shape.SetAngle(sel.Shape.Angle() + rotStep)
		}
		if in.Has(core.ActionRotateCCW) {
			sel.Shape.SetAngle(sel.Shape.Angle() - rotStep)
		}
	}

	return false
}
