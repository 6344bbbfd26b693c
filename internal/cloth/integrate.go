package cloth

import (
	"context"

	"github.com/chewxy/math32"

	vmath "github.com/Faultbox/clothsim/pkg/math"
)

// maxVelocity caps vertex speed. Bounded velocity bounds per-step position
// movement, so a degenerate neighborhood can never propagate an overflow
// into positions.
const maxVelocity = 50.0

// Step advances the simulation by one fixed time step using semi-implicit
// Euler. A step is atomic: forces are gathered from the pre-step state for
// every vertex before any vertex moves, constraints are applied, and the
// resulting frame is pushed into the history.
func (s *SimulationState) Step() {
	dt := s.cfg.TimeStep

	// Gather forces against the unmodified state.
	for y := 0; y < s.Topo.ResY; y++ {
		for x := 0; x < s.Topo.ResX; x++ {
			idx := s.Topo.Index(x, y)
			v := &s.Vertices[idx]
			if v.Pinned {
				v.Acceleration = vzero
				continue
			}
			v.Acceleration = s.netForce(x, y).Scale(1 / v.Mass)
		}
	}

	// Integrate: velocity first, then position.
	for i := range s.Vertices {
		v := &s.Vertices[i]
		if v.Pinned {
			continue
		}
		v.Velocity = clampVelocity(v.Velocity.AddScaled(v.Acceleration, dt))
		v.Position = v.Position.AddScaled(v.Velocity, dt)
	}

	s.applyConstraints(dt)
	s.pushFrame()

	s.stepsDone++
	s.time += dt
}

// clampVelocity bounds a velocity to maxVelocity. Non-finite speeds zero
// the velocity outright instead of scaling, which would keep the Inf.
func clampVelocity(v vmath.Vec3) vmath.Vec3 {
	speed := v.Length()
	if math32.IsNaN(speed) || math32.IsInf(speed, 1) {
		return vmath.Vec3{}
	}
	if speed > maxVelocity {
		return v.Scale(maxVelocity / speed)
	}
	return v
}

// applyConstraints enforces attachments after integration: fixed constraints
// snap the vertex to its target and zero its velocity, soft constraints
// nudge it toward the target scaled by strength and dt.
func (s *SimulationState) applyConstraints(dt float32) {
	for _, c := range s.Constraints {
		v := &s.Vertices[c.Vertex]
		switch c.Kind {
		case ConstraintFixed:
			v.Position = c.Target
			v.Velocity = vzero
		case ConstraintSoft:
			v.Position = v.Position.Lerp(c.Target, c.Strength*dt)
		}
	}
}

// Run executes steps integration steps, checking the context between steps
// only; a step in flight is never interrupted. On cancellation the partial
// state is simply abandoned by the caller, there is nothing to roll back.
func (s *SimulationState) Run(ctx context.Context, steps int) error {
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
	}
	return nil
}
