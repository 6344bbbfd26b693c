package cloth

import (
	"math/rand"

	"github.com/Faultbox/clothsim/internal/config"
	vmath "github.com/Faultbox/clothsim/pkg/math"
)

// Frame is a snapshot of vertex positions and velocities after one
// integration step, kept for the temporal force terms.
type Frame struct {
	Positions  []vmath.Vec3
	Velocities []vmath.Vec3
}

// SimulationState holds everything one garment-generation request mutates.
// Each request owns its own state, so concurrent generations never share
// simulation data. The state is discarded after mesh extraction.
type SimulationState struct {
	Vertices    []Vertex
	Springs     []Spring
	Constraints []Constraint

	Topo   *Topology
	Fabric FabricMaterial

	cfg config.SimulationConfig
	rng *rand.Rand

	// restPositions is the undeformed grid, the reference for strain and
	// curvature features.
	restPositions []vmath.Vec3

	// Single-sphere body approximation for collision.
	bodyCenter vmath.Vec3
	bodyRadius float32

	// history is a bounded ring of past frames, oldest first. Length never
	// exceeds cfg.TemporalMemory.
	history []Frame

	stepsDone int
	time      float32
}

// NewSimulationState assembles a simulation from its built parts. The rng
// drives only the wrinkle perturbation; pass a seeded source for
// reproducible runs.
func NewSimulationState(topo *Topology, springs []Spring, constraints []Constraint,
	fabric FabricMaterial, body BodyDescriptor, cfg config.SimulationConfig, rng *rand.Rand) *SimulationState {

	body = body.normalized()
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = 1.0 / 60.0
	}
	if cfg.TemporalMemory <= 0 {
		cfg.TemporalMemory = 8
	}

	s := &SimulationState{
		Vertices:      make([]Vertex, topo.VertexCount()),
		Springs:       springs,
		Constraints:   constraints,
		Topo:          topo,
		Fabric:        fabric,
		cfg:           cfg,
		rng:           rng,
		restPositions: append([]vmath.Vec3(nil), topo.Positions...),
		history:       make([]Frame, 0, cfg.TemporalMemory),
	}

	// Heavier fabrics yield heavier vertices; mass stays strictly positive.
	mass := 0.1 + 0.2*fabric.Density
	for i := range s.Vertices {
		s.Vertices[i] = Vertex{
			Position: topo.Positions[i],
			Mass:     mass,
		}
	}

	for _, c := range constraints {
		if c.Kind == ConstraintFixed {
			s.Vertices[c.Vertex].Pinned = true
		}
	}

	// The body sphere sits behind the cloth at chest height, widened by the
	// build.
	s.bodyCenter = vmath.Vec3{
		X: 0,
		Y: topo.Pattern.AnchorHeight*body.Scale - 0.3*body.Scale,
		Z: 0,
	}
	s.bodyRadius = cfg.CollisionRadius * body.Scale * body.Build.widthFactor()

	return s
}

// StepsDone returns how many integration steps have run.
func (s *SimulationState) StepsDone() int {
	return s.stepsDone
}

// HistoryLen returns the number of retained past frames.
func (s *SimulationState) HistoryLen() int {
	return len(s.history)
}

// pushFrame records the current positions and velocities, evicting the
// oldest frame when over capacity.
func (s *SimulationState) pushFrame() {
	frame := Frame{
		Positions:  make([]vmath.Vec3, len(s.Vertices)),
		Velocities: make([]vmath.Vec3, len(s.Vertices)),
	}
	for i := range s.Vertices {
		frame.Positions[i] = s.Vertices[i].Position
		frame.Velocities[i] = s.Vertices[i].Velocity
	}

	s.history = append(s.history, frame)
	if len(s.history) > s.cfg.TemporalMemory {
		s.history = s.history[1:]
	}
}

// frameAt returns the k-th most recent frame (0 = latest) and whether it
// exists.
func (s *SimulationState) frameAt(k int) (Frame, bool) {
	if k < 0 || k >= len(s.history) {
		return Frame{}, false
	}
	return s.history[len(s.history)-1-k], true
}
