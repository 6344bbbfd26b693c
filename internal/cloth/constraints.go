package cloth

import vmath "github.com/Faultbox/clothsim/pkg/math"

// attachmentPoint returns the body-space point a grid cell attaches to. The
// attachment row sits at the pattern's anchor height (shoulder line for
// collars, waist line for waistbands), spread across a fraction of the
// garment width so the cloth gathers slightly toward the body.
func attachmentPoint(topo *Topology, body BodyDescriptor, x, y int) vmath.Vec3 {
	var u, v float32
	if topo.ResX > 1 {
		u = float32(x) / float32(topo.ResX-1)
	}
	if topo.ResY > 1 {
		v = float32(y) / float32(topo.ResY-1)
	}

	spread := topo.Width * 0.8
	return vmath.Vec3{
		X: (u - 0.5) * spread,
		Y: topo.Pattern.AnchorHeight*body.Scale - v*topo.Height,
		Z: topo.Depth * 0.3,
	}
}

// BuildConstraints derives attachment constraints from the pattern's
// constraint-point categories: collar and waistband patterns pin the whole
// top row, side patterns add soft pulls at quarter-height intervals along
// both edges.
func BuildConstraints(topo *Topology, body BodyDescriptor) []Constraint {
	body = body.normalized()
	var constraints []Constraint

	if topo.Pattern.hasConstraintPoint(PointCollar) || topo.Pattern.hasConstraintPoint(PointWaistband) {
		for x := 0; x < topo.ResX; x++ {
			constraints = append(constraints, Constraint{
				Vertex: topo.Index(x, 0),
				Kind:   ConstraintFixed,
				Target: attachmentPoint(topo, body, x, 0),
			})
		}
	}

	if topo.Pattern.hasConstraintPoint(PointSide) {
		for quarter := 1; quarter <= 3; quarter++ {
			y := quarter * (topo.ResY - 1) / 4
			if y <= 0 || y >= topo.ResY {
				continue
			}
			edges := []int{0, topo.ResX - 1}
			if topo.ResX == 1 {
				edges = edges[:1]
			}
			for _, x := range edges {
				constraints = append(constraints, Constraint{
					Vertex:   topo.Index(x, y),
					Kind:     ConstraintSoft,
					Target:   attachmentPoint(topo, body, x, y),
					Strength: 0.5,
				})
			}
		}
	}

	return constraints
}
