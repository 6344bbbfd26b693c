package cloth

import "github.com/chewxy/math32"

// BuildSprings derives the four-tier spring network from grid adjacency:
// structural springs to the right and down neighbors, a shear spring to the
// down-right diagonal, and bending springs two cells away horizontally and
// vertically. The combination resists stretch, shear, and folding at once.
func BuildSprings(topo *Topology) []Spring {
	unit := topo.CellSize
	springs := make([]Spring, 0, topo.VertexCount()*4)

	for y := 0; y < topo.ResY; y++ {
		for x := 0; x < topo.ResX; x++ {
			idx := topo.Index(x, y)

			// Structural
			if x+1 < topo.ResX {
				springs = append(springs, Spring{
					A: idx, B: topo.Index(x+1, y),
					RestLength: unit,
					Kind:       SpringStructural,
				})
			}
			if y+1 < topo.ResY {
				springs = append(springs, Spring{
					A: idx, B: topo.Index(x, y+1),
					RestLength: unit,
					Kind:       SpringStructural,
				})
			}

			// Shear
			if x+1 < topo.ResX && y+1 < topo.ResY {
				springs = append(springs, Spring{
					A: idx, B: topo.Index(x+1, y+1),
					RestLength: unit * math32.Sqrt2,
					Kind:       SpringShear,
				})
			}

			// Bending
			if x+2 < topo.ResX {
				springs = append(springs, Spring{
					A: idx, B: topo.Index(x+2, y),
					RestLength: unit * 2,
					Kind:       SpringBending,
				})
			}
			if y+2 < topo.ResY {
				springs = append(springs, Spring{
					A: idx, B: topo.Index(x, y+2),
					RestLength: unit * 2,
					Kind:       SpringBending,
				})
			}
		}
	}

	return springs
}
