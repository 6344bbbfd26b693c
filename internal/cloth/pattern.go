package cloth

// FabricMaterial holds the normalized material response of a fabric.
// All fields are in [0,1].
type FabricMaterial struct {
	Name              string
	Stiffness         float32 // spring force response
	Stretch           float32 // tolerance to elongation
	Drape             float32 // how readily the fabric hangs
	BendingResistance float32 // resistance to folding
	WrinkleResistance float32 // resistance to fine creasing
	Density           float32 // mass per vertex contribution
}

// fabricTable holds the built-in fabric presets.
var fabricTable = map[string]FabricMaterial{
	"cotton": {
		Name:              "cotton",
		Stiffness:         0.5,
		Stretch:           0.4,
		Drape:             0.6,
		BendingResistance: 0.3,
		WrinkleResistance: 0.3,
		Density:           0.5,
	},
	"silk": {
		Name:              "silk",
		Stiffness:         0.25,
		Stretch:           0.55,
		Drape:             0.9,
		BendingResistance: 0.1,
		WrinkleResistance: 0.5,
		Density:           0.3,
	},
	"denim": {
		Name:              "denim",
		Stiffness:         0.8,
		Stretch:           0.15,
		Drape:             0.3,
		BendingResistance: 0.7,
		WrinkleResistance: 0.6,
		Density:           0.8,
	},
	"leather": {
		Name:              "leather",
		Stiffness:         0.9,
		Stretch:           0.1,
		Drape:             0.2,
		BendingResistance: 0.85,
		WrinkleResistance: 0.8,
		Density:           0.9,
	},
	"wool": {
		Name:              "wool",
		Stiffness:         0.6,
		Stretch:           0.3,
		Drape:             0.5,
		BendingResistance: 0.45,
		WrinkleResistance: 0.4,
		Density:           0.7,
	},
}

// FabricByName returns a built-in fabric preset. Unknown names return the
// cotton preset.
func FabricByName(name string) FabricMaterial {
	if f, ok := fabricTable[name]; ok {
		return f
	}
	return fabricTable["cotton"]
}

// FabricNames returns the names of all built-in fabrics.
func FabricNames() []string {
	names := make([]string, 0, len(fabricTable))
	for name := range fabricTable {
		names = append(names, name)
	}
	return names
}

// Constraint-point categories a pattern may declare.
const (
	PointCollar    = "collar"
	PointWaistband = "waistband"
	PointSide      = "side"
)

// GarmentPattern describes how a cloth grid maps onto a clothing shape:
// nominal dimensions at body scale 1.0, vertex density, and the seam and
// constraint-point categories used when attaching the garment to the body.
type GarmentPattern struct {
	Name                 string
	Width, Height, Depth float32
	Density              int // nominal vertex count before LOD
	Seams                []string
	ConstraintPoints     []string
	AnchorHeight         float32 // world Y of the attachment row at scale 1.0
}

// patternTable holds the built-in garment topologies.
var patternTable = map[string]GarmentPattern{
	"shirt": {
		Name:             "shirt",
		Width:            0.6,
		Height:           0.8,
		Depth:            0.22,
		Density:          400,
		Seams:            []string{"shoulder", "side"},
		ConstraintPoints: []string{PointCollar, PointSide},
		AnchorHeight:     1.45,
	},
	"dress": {
		Name:             "dress",
		Width:            0.7,
		Height:           1.3,
		Depth:            0.3,
		Density:          900,
		Seams:            []string{"shoulder", "side"},
		ConstraintPoints: []string{PointCollar, PointSide},
		AnchorHeight:     1.45,
	},
	"pants": {
		Name:             "pants",
		Width:            0.5,
		Height:           1.0,
		Depth:            0.3,
		Density:          600,
		Seams:            []string{"inseam", "side"},
		ConstraintPoints: []string{PointWaistband},
		AnchorHeight:     1.0,
	},
	"skirt": {
		Name:             "skirt",
		Width:            0.6,
		Height:           0.6,
		Depth:            0.3,
		Density:          400,
		Seams:            []string{"side"},
		ConstraintPoints: []string{PointWaistband, PointSide},
		AnchorHeight:     1.0,
	},
	"cape": {
		Name:             "cape",
		Width:            0.9,
		Height:           1.2,
		Depth:            0.15,
		Density:          800,
		Seams:            []string{"shoulder"},
		ConstraintPoints: []string{PointCollar},
		AnchorHeight:     1.5,
	},
}

// PatternByName returns a built-in garment pattern. Unknown names fall back
// to the shirt pattern; this is documented behavior, not an error.
func PatternByName(name string) GarmentPattern {
	if p, ok := patternTable[name]; ok {
		return p
	}
	return patternTable["shirt"]
}

// PatternNames returns the names of all built-in patterns.
func PatternNames() []string {
	names := make([]string, 0, len(patternTable))
	for name := range patternTable {
		names = append(names, name)
	}
	return names
}

// hasConstraintPoint reports whether the pattern declares the given
// constraint-point category.
func (p GarmentPattern) hasConstraintPoint(category string) bool {
	for _, c := range p.ConstraintPoints {
		if c == category {
			return true
		}
	}
	return false
}
