package cloth

import (
	"github.com/chewxy/math32"

	vmath "github.com/Faultbox/clothsim/pkg/math"
)

// Internal force scales. These convert the normalized feature values into
// forces comparable to gravity at the default vertex mass while keeping the
// explicit integration stable at 1/60 s.
const (
	stiffnessScale = 4.0
	bendingScale   = 1.0
	stretchScale   = 1.0
)

// neighborOffsets lists the 8 grid neighbors in ring order, so consecutive
// entries are angularly adjacent for the curvature feature.
var neighborOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// vertexFeatures are the spatial features the force branches consume, all
// derived from a vertex's grid neighborhood.
type vertexFeatures struct {
	strain    float32    // signed mean relative elongation vs rest
	strainVec vmath.Vec3 // direction-weighted elongation
	curvature float32    // mean angular deviation of the neighbor fan vs rest
	density   float32    // rest distance over actual distance, >1 when compressed
	normal    vmath.Vec3 // approximate surface normal
}

// features computes the spatial features for grid cell (x,y). Neighbors at
// zero distance are skipped so a degenerate configuration never divides by
// zero.
func (s *SimulationState) features(x, y int) vertexFeatures {
	idx := s.Topo.Index(x, y)
	pos := s.Vertices[idx].Position
	restPos := s.restPositions[idx]

	var f vertexFeatures
	var dirs, restDirs []vmath.Vec3
	var restSum, actualSum float32
	var count int

	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= s.Topo.ResX || ny < 0 || ny >= s.Topo.ResY {
			continue
		}
		nIdx := s.Topo.Index(nx, ny)

		delta := s.Vertices[nIdx].Position.Sub(pos)
		restDelta := s.restPositions[nIdx].Sub(restPos)
		dist := delta.Length()
		rest := restDelta.Length()
		if dist == 0 || rest == 0 {
			continue
		}

		elong := (dist - rest) / rest
		f.strain += elong
		f.strainVec = f.strainVec.AddScaled(delta.Scale(1/dist), elong)

		restSum += rest
		actualSum += dist
		count++

		dirs = append(dirs, delta.Scale(1/dist))
		restDirs = append(restDirs, restDelta.Scale(1/rest))
	}

	if count == 0 {
		return f
	}

	inv := 1 / float32(count)
	f.strain *= inv
	f.strainVec = f.strainVec.Scale(inv)
	if actualSum > 0 {
		f.density = restSum / actualSum
	}

	// Curvature is how far the neighbor fan has bent away from its rest
	// arrangement; flat cloth measures zero. The pairwise cross products
	// double as a surface normal estimate.
	if len(dirs) >= 2 {
		var angleSum float32
		var normal vmath.Vec3
		for i := 1; i < len(dirs); i++ {
			angleSum += dirs[i-1].Angle(dirs[i]) - restDirs[i-1].Angle(restDirs[i])
			normal = normal.Add(dirs[i-1].Cross(dirs[i]))
		}
		f.curvature = angleSum / float32(len(dirs)-1)
		f.normal = normal.Normalize()
	}

	return f
}

// linearBranch is the spring and damping response. strainVec accumulates
// unit directions weighted by elongation, so it already points in the
// restoring direction: toward over-stretched neighbors, away from
// compressed ones. The spring force follows it with a positive gain.
func (s *SimulationState) linearBranch(f vertexFeatures, vel vmath.Vec3) vmath.Vec3 {
	spring := f.strainVec.Scale(s.Fabric.Stiffness * stiffnessScale)
	damping := vel.Scale(-s.cfg.Damping)
	return spring.Add(damping)
}

// nonlinearBranch combines bending, stretch resistance, and the wrinkle
// perturbation. Compressed regions (density > 1) fold more readily, so
// bending scales with the density feature.
func (s *SimulationState) nonlinearBranch(f vertexFeatures) vmath.Vec3 {
	bending := f.normal.Scale(-f.curvature * s.Fabric.BendingResistance * f.density * bendingScale)

	// Stretch resistance opposes the elongation, which means following the
	// restoring strainVec direction, same as the spring term.
	stretch := f.strainVec.Normalize().
		Scale(math32.Abs(f.strain) * (1 - s.Fabric.Stretch) * stretchScale)

	force := bending.Add(stretch)

	if abs := math32.Abs(f.curvature); abs > s.cfg.WrinkleThreshold && s.rng != nil {
		amp := (abs - s.cfg.WrinkleThreshold) * (1 - s.Fabric.WrinkleResistance) * s.cfg.WrinkleScale
		force = force.Add(vmath.Vec3{
			X: (s.rng.Float32()*2 - 1) * amp,
			Y: (s.rng.Float32()*2 - 1) * amp,
			Z: (s.rng.Float32()*2 - 1) * amp,
		})
	}

	return force
}

// temporalBranch is the velocity change between the last two stored history
// frames, zero while fewer than two exist. The acceleration trend over the
// same two frames is this change divided by dt, so the blended velocity
// change term carries it implicitly.
func (s *SimulationState) temporalBranch(i int) vmath.Vec3 {
	prev, ok1 := s.frameAt(0)
	prev2, ok2 := s.frameAt(1)
	if !ok1 || !ok2 {
		return vmath.Vec3{}
	}

	return prev.Velocities[i].Sub(prev2.Velocities[i])
}

// externalForces returns gravity, wind, and the body-collision push for
// vertex i. Wind varies with simulated time and couples to the fabric's
// drape; the body is a single sphere, and penetration pushes the vertex
// straight out proportional to depth.
func (s *SimulationState) externalForces(i int) vmath.Vec3 {
	v := &s.Vertices[i]

	force := vmath.Vec3{Y: -s.cfg.Gravity * v.Mass}

	wind := vmath.Vec3{
		X: math32.Sin(s.time * 1.3),
		Z: math32.Cos(s.time*0.7) * 0.5,
	}.Scale(s.cfg.WindAmplitude * (0.5 + 0.5*s.Fabric.Drape))
	force = force.Add(wind)

	delta := v.Position.Sub(s.bodyCenter)
	dist := delta.Length()
	if dist > 0 && dist < s.bodyRadius {
		depth := s.bodyRadius - dist
		force = force.AddScaled(delta.Scale(1/dist), depth*s.cfg.CollisionPush)
	}

	return force
}

// netForce blends the three branches with the configured weights and adds
// external forces.
func (s *SimulationState) netForce(x, y int) vmath.Vec3 {
	idx := s.Topo.Index(x, y)
	f := s.features(x, y)

	linear := s.linearBranch(f, s.Vertices[idx].Velocity)
	nonlinear := s.nonlinearBranch(f)
	temporal := s.temporalBranch(idx)

	net := linear.Scale(s.cfg.LinearWeight).
		Add(nonlinear.Scale(s.cfg.NonlinearWeight)).
		Add(temporal.Scale(s.cfg.TemporalWeight))

	return net.Add(s.externalForces(idx))
}
