package cloth

import "testing"

func TestCollarPinsTopRow(t *testing.T) {
	topo := buildTestTopology(t, "shirt", 2000)
	constraints := BuildConstraints(topo, BodyDescriptor{Scale: 1.0})

	fixed := make(map[int]bool)
	for _, c := range constraints {
		if c.Kind == ConstraintFixed {
			fixed[c.Vertex] = true
		}
	}

	for x := 0; x < topo.ResX; x++ {
		if !fixed[topo.Index(x, 0)] {
			t.Fatalf("top-row vertex (%d,0) is not fixed", x)
		}
	}
	if len(fixed) != topo.ResX {
		t.Errorf("expected exactly %d fixed vertices, got %d", topo.ResX, len(fixed))
	}
}

func TestSideConstraintsAreSoft(t *testing.T) {
	topo := buildTestTopology(t, "shirt", 2000)
	constraints := BuildConstraints(topo, BodyDescriptor{Scale: 1.0})

	var soft []Constraint
	for _, c := range constraints {
		if c.Kind == ConstraintSoft {
			soft = append(soft, c)
		}
	}

	// Quarter-height rows on both edges
	if len(soft) != 6 {
		t.Fatalf("expected 6 soft constraints, got %d", len(soft))
	}
	for _, c := range soft {
		if c.Strength != 0.5 {
			t.Errorf("soft constraint strength = %v, want 0.5", c.Strength)
		}
		x := c.Vertex % topo.ResX
		if x != 0 && x != topo.ResX-1 {
			t.Errorf("soft constraint on column %d, want an edge column", x)
		}
	}
}

func TestCapeHasNoSideConstraints(t *testing.T) {
	topo := buildTestTopology(t, "cape", 2000)
	constraints := BuildConstraints(topo, BodyDescriptor{Scale: 1.0})

	for _, c := range constraints {
		if c.Kind == ConstraintSoft {
			t.Fatalf("cape pattern produced a soft constraint at vertex %d", c.Vertex)
		}
	}
}

func TestConstraintIndicesValid(t *testing.T) {
	for _, name := range PatternNames() {
		topo := buildTestTopology(t, name, 2000)
		for i, c := range BuildConstraints(topo, BodyDescriptor{Scale: 1.0}) {
			if c.Vertex < 0 || c.Vertex >= topo.VertexCount() {
				t.Fatalf("pattern %s: constraint %d references invalid vertex %d", name, i, c.Vertex)
			}
		}
	}
}

func TestAttachmentScalesWithBody(t *testing.T) {
	topo := buildTestTopology(t, "shirt", 2000)

	small := BuildConstraints(topo, BodyDescriptor{Scale: 1.0})
	// Rebuild topology at the larger scale so dimensions match
	big, err := BuildTopology(BodyDescriptor{Scale: 2.0}, PatternByName("shirt"), 2000)
	if err != nil {
		t.Fatalf("BuildTopology() error: %v", err)
	}
	large := BuildConstraints(big, BodyDescriptor{Scale: 2.0})

	if small[0].Target.Y >= large[0].Target.Y {
		t.Errorf("attachment height did not scale: %v vs %v",
			small[0].Target.Y, large[0].Target.Y)
	}
}
