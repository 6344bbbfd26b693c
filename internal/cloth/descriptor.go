// Package cloth implements the procedural cloth simulation that drapes a
// garment mesh over a character body.
//
// A generation request turns a BodyDescriptor and a GarmentDescriptor into a
// FinalClothMesh: the garment pattern is laid out as a rectangular vertex
// grid, connected by structural, shear, and bending springs, attached to the
// body through constraints, and integrated under a blended force model for a
// fixed number of steps before the mesh is extracted.
package cloth

import "math/rand"

// Build classifies a character body shape. It widens or narrows the
// collision sphere and the attachment spread.
type Build int

// Body builds.
const (
	BuildAverage Build = iota
	BuildSlim
	BuildAthletic
	BuildHeavy
)

// widthFactor returns the horizontal scale a build applies to the body.
func (b Build) widthFactor() float32 {
	switch b {
	case BuildSlim:
		return 0.85
	case BuildAthletic:
		return 1.1
	case BuildHeavy:
		return 1.3
	default:
		return 1.0
	}
}

// BodyDescriptor describes the character the garment is draped over.
// A zero or negative Scale is treated as 1.0.
type BodyDescriptor struct {
	Scale float32
	Build Build
}

// normalized returns a copy with defaulted fields filled in.
func (b BodyDescriptor) normalized() BodyDescriptor {
	if b.Scale <= 0 {
		b.Scale = 1.0
	}
	return b
}

// Color is an RGB color in [0,1] per channel. It passes through the
// simulation untouched; the renderer consumes it.
type Color struct {
	R, G, B float32
}

// GarmentDescriptor selects what to simulate. Style maps to a pattern and
// fabric via the style table; unknown styles fall back to a cotton shirt.
type GarmentDescriptor struct {
	Style  string
	Colors []Color
}

// styleChoice pairs a pattern name with a fabric name.
type styleChoice struct {
	pattern string
	fabric  string
}

// styleTable maps garment styles to candidate pattern/fabric pairs. Styles
// with a single candidate resolve deterministically; styles listing several
// pick one with the caller's random source.
var styleTable = map[string][]styleChoice{
	"casual":     {{"shirt", "cotton"}},
	"formal":     {{"dress", "silk"}},
	"business":   {{"shirt", "wool"}},
	"sporty":     {{"shirt", "cotton"}},
	"rugged":     {{"pants", "denim"}},
	"biker":      {{"pants", "leather"}},
	"winter":     {{"cape", "wool"}},
	"dancer":     {{"skirt", "silk"}},
	"streetwear": {{"shirt", "denim"}, {"cape", "cotton"}},
}

// ResolveStyle maps a garment style to a pattern and fabric. Unknown styles
// fall back to the shirt pattern and cotton fabric; this is documented
// behavior, not an error.
func ResolveStyle(style string, rng *rand.Rand) (GarmentPattern, FabricMaterial) {
	choices, ok := styleTable[style]
	if !ok || len(choices) == 0 {
		return PatternByName("shirt"), FabricByName("cotton")
	}
	choice := choices[0]
	if len(choices) > 1 && rng != nil {
		choice = choices[rng.Intn(len(choices))]
	}
	return PatternByName(choice.pattern), FabricByName(choice.fabric)
}
