package cloth

import (
	"testing"

	"github.com/chewxy/math32"
)

func buildTestTopology(t *testing.T, pattern string, maxVertices int) *Topology {
	t.Helper()
	topo, err := BuildTopology(BodyDescriptor{Scale: 1.0}, PatternByName(pattern), maxVertices)
	if err != nil {
		t.Fatalf("BuildTopology() error: %v", err)
	}
	return topo
}

func TestBuildSpringsCounts(t *testing.T) {
	topo := buildTestTopology(t, "shirt", 2000)
	springs := BuildSprings(topo)

	n := topo.ResX // square grid
	wantStructural := 2 * n * (n - 1)
	wantShear := (n - 1) * (n - 1)
	wantBending := 2 * n * (n - 2)

	var structural, shear, bending int
	for _, s := range springs {
		switch s.Kind {
		case SpringStructural:
			structural++
		case SpringShear:
			shear++
		case SpringBending:
			bending++
		}
	}

	if structural != wantStructural {
		t.Errorf("structural springs = %d, want %d", structural, wantStructural)
	}
	if shear != wantShear {
		t.Errorf("shear springs = %d, want %d", shear, wantShear)
	}
	if bending != wantBending {
		t.Errorf("bending springs = %d, want %d", bending, wantBending)
	}
}

func TestBuildSpringsRestLengths(t *testing.T) {
	topo := buildTestTopology(t, "shirt", 2000)
	unit := topo.CellSize

	for i, s := range BuildSprings(topo) {
		if s.RestLength <= 0 {
			t.Fatalf("spring %d has non-positive rest length %v", i, s.RestLength)
		}

		var want float32
		switch s.Kind {
		case SpringStructural:
			want = unit
		case SpringShear:
			want = unit * math32.Sqrt2
		case SpringBending:
			want = unit * 2
		}
		if math32.Abs(s.RestLength-want) > 1e-6 {
			t.Fatalf("spring %d (%s) rest length = %v, want %v", i, s.Kind, s.RestLength, want)
		}
	}
}

func TestBuildSpringsValidIndices(t *testing.T) {
	topo := buildTestTopology(t, "dress", 2000)
	count := topo.VertexCount()

	for i, s := range BuildSprings(topo) {
		if s.A < 0 || s.A >= count || s.B < 0 || s.B >= count {
			t.Fatalf("spring %d references invalid vertex: %d-%d (count %d)", i, s.A, s.B, count)
		}
		if s.A == s.B {
			t.Fatalf("spring %d connects vertex %d to itself", i, s.A)
		}
	}
}
