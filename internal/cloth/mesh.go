package cloth

import vmath "github.com/Faultbox/clothsim/pkg/math"

// MeshMetadata summarizes the simulation that produced a mesh.
type MeshMetadata struct {
	VertexCount     int
	SpringCount     int
	ConstraintCount int
	StepsSimulated  int
	Pattern         string
	Fabric          string
}

// FinalClothMesh is the renderable output: flat parallel arrays in the
// layout the visualization layer uploads directly (3 floats per position
// and normal, 2 per UV), plus a triangle index list.
type FinalClothMesh struct {
	Positions   []float32
	Normals     []float32
	UVs         []float32
	FaceIndices []uint32
	Metadata    MeshMetadata
}

// TriangleCount returns the number of triangles in the face list.
func (m *FinalClothMesh) TriangleCount() int {
	return len(m.FaceIndices) / 3
}

// ExtractMesh packages the simulation state into a FinalClothMesh: smoothed
// per-vertex normals accumulated from the grid quads, the original UVs, and
// two triangles per quad.
func ExtractMesh(s *SimulationState) *FinalClothMesh {
	topo := s.Topo
	vertexCount := topo.VertexCount()

	mesh := &FinalClothMesh{
		Positions:   make([]float32, 0, vertexCount*3),
		Normals:     make([]float32, 0, vertexCount*3),
		UVs:         make([]float32, 0, vertexCount*2),
		FaceIndices: make([]uint32, 0, (topo.ResX-1)*(topo.ResY-1)*6),
		Metadata: MeshMetadata{
			VertexCount:     vertexCount,
			SpringCount:     len(s.Springs),
			ConstraintCount: len(s.Constraints),
			StepsSimulated:  s.stepsDone,
			Pattern:         topo.Pattern.Name,
			Fabric:          s.Fabric.Name,
		},
	}

	// Accumulate face normals per vertex, then normalize. Degenerate quads
	// contribute a zero normal, which drops out of the accumulation.
	normals := make([]vmath.Vec3, vertexCount)
	for y := 0; y < topo.ResY-1; y++ {
		for x := 0; x < topo.ResX-1; x++ {
			i0 := topo.Index(x, y)
			i1 := topo.Index(x+1, y)
			i2 := topo.Index(x, y+1)
			i3 := topo.Index(x+1, y+1)

			p0 := s.Vertices[i0].Position
			edge1 := s.Vertices[i1].Position.Sub(p0)
			edge2 := s.Vertices[i2].Position.Sub(p0)
			n := edge1.Cross(edge2)

			for _, idx := range [4]int{i0, i1, i2, i3} {
				normals[idx] = normals[idx].Add(n)
			}

			mesh.FaceIndices = append(mesh.FaceIndices,
				uint32(i0), uint32(i1), uint32(i2),
				uint32(i2), uint32(i1), uint32(i3),
			)
		}
	}

	for i := 0; i < vertexCount; i++ {
		p := s.Vertices[i].Position
		mesh.Positions = append(mesh.Positions, p.X, p.Y, p.Z)

		n := normals[i].Normalize()
		if n == (vmath.Vec3{}) {
			n = vmath.Vec3{Z: 1}
		}
		mesh.Normals = append(mesh.Normals, n.X, n.Y, n.Z)

		uv := topo.UVs[i]
		mesh.UVs = append(mesh.UVs, uv.X, uv.Y)
	}

	return mesh
}
