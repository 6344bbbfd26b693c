package cloth

import vmath "github.com/Faultbox/clothsim/pkg/math"

// vzero is the zero vector.
var vzero vmath.Vec3

// Vertex is a point mass in the cloth grid. Vertices are owned by the
// SimulationState that created them and referenced by index everywhere else.
type Vertex struct {
	Position     vmath.Vec3
	Velocity     vmath.Vec3
	Acceleration vmath.Vec3
	Mass         float32
	Pinned       bool
}

// SpringKind classifies a spring by the deformation mode it resists.
type SpringKind uint8

// Spring kinds.
const (
	SpringStructural SpringKind = iota // direct horizontal/vertical neighbors
	SpringShear                        // diagonal neighbors
	SpringBending                      // two-step horizontal/vertical neighbors
)

// String returns the spring kind name.
func (k SpringKind) String() string {
	switch k {
	case SpringStructural:
		return "structural"
	case SpringShear:
		return "shear"
	case SpringBending:
		return "bending"
	default:
		return "unknown"
	}
}

// Spring connects two vertices by index with a positive rest length.
type Spring struct {
	A, B       int
	RestLength float32
	Kind       SpringKind
}

// ConstraintKind classifies how strongly a constraint binds its vertex.
type ConstraintKind uint8

// Constraint kinds.
const (
	// ConstraintFixed snaps the vertex to the target and zeroes its
	// velocity every step.
	ConstraintFixed ConstraintKind = iota
	// ConstraintSoft pulls the vertex toward the target proportionally to
	// Strength.
	ConstraintSoft
)

// Constraint attaches a vertex to a target point on the body.
type Constraint struct {
	Vertex   int
	Kind     ConstraintKind
	Target   vmath.Vec3
	Strength float32 // in [0,1]; unused for fixed constraints
}
