package cloth

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/clothsim/internal/logger"
	vmath "github.com/Faultbox/clothsim/pkg/math"
)

// Topology is the rectangular vertex grid a garment pattern is laid out on.
// Vertex (x,y) lives at index y*ResX+x; row 0 is the top of the garment and
// world Y decreases per row.
type Topology struct {
	ResX, ResY int
	Positions  []vmath.Vec3
	UVs        []vmath.Vec2

	// CellSize is the horizontal vertex spacing, the base unit for spring
	// rest lengths.
	CellSize float32

	Width, Height, Depth float32
	Pattern              GarmentPattern
}

// VertexCount returns the number of grid vertices.
func (t *Topology) VertexCount() int {
	return t.ResX * t.ResY
}

// Index returns the vertex index for grid cell (x,y).
func (t *Topology) Index(x, y int) int {
	return y*t.ResX + x
}

// BuildTopology lays out the garment pattern as a vertex grid scaled to the
// body. The grid resolution follows the pattern's nominal density but is
// reduced when it would exceed maxVertices, so oversized requests degrade
// instead of failing. A computed resolution of zero or less reports
// ErrInvalidTopology.
func BuildTopology(body BodyDescriptor, pattern GarmentPattern, maxVertices int) (*Topology, error) {
	body = body.normalized()
	if maxVertices <= 0 {
		maxVertices = 2000
	}

	width := pattern.Width * body.Scale * body.Build.widthFactor()
	height := pattern.Height * body.Scale
	depth := pattern.Depth * body.Scale

	res := 0
	if pattern.Density > 0 {
		res = int(math32.Round(math32.Sqrt(float32(pattern.Density))))
	}
	if res*res > maxVertices {
		// Adaptive LOD: shrink to the largest square grid under the cap.
		res = int(math32.Floor(math32.Sqrt(float32(maxVertices))))
		logger.Debug("topology reduced by adaptive LOD",
			zap.String("pattern", pattern.Name),
			zap.Int("nominal", pattern.Density),
			zap.Int("resolution", res))
	}
	if res <= 0 {
		return nil, fmt.Errorf("%w: pattern %q resolves to resolution %d",
			ErrInvalidTopology, pattern.Name, res)
	}

	topo := &Topology{
		ResX:      res,
		ResY:      res,
		Positions: make([]vmath.Vec3, 0, res*res),
		UVs:       make([]vmath.Vec2, 0, res*res),
		Width:     width,
		Height:    height,
		Depth:     depth,
		Pattern:   pattern,
	}

	// A single-vertex grid has no spacing; keep the cell size positive so
	// rest lengths stay valid.
	if res > 1 {
		topo.CellSize = width / float32(res-1)
	} else {
		topo.CellSize = width
	}

	top := pattern.AnchorHeight * body.Scale
	for y := 0; y < res; y++ {
		var v float32
		if res > 1 {
			v = float32(y) / float32(res-1)
		}
		for x := 0; x < res; x++ {
			var u float32
			if res > 1 {
				u = float32(x) / float32(res-1)
			}

			// Centered on X, hanging down from the anchor row, bowed
			// slightly forward on Z so the cloth starts in front of the
			// body rather than inside it.
			pos := vmath.Vec3{
				X: (u - 0.5) * width,
				Y: top - v*height,
				Z: depth * 0.5 * math32.Sin(u*math32.Pi),
			}
			topo.Positions = append(topo.Positions, pos)
			topo.UVs = append(topo.UVs, vmath.Vec2{X: u, Y: v})
		}
	}

	return topo, nil
}
