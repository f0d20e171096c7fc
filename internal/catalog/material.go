package catalog

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Category int

const (
	Metal Category = iota
	Plastic
	Ceramic
	Soft
	Special
)

func (c Category) Label() string {
	switch c {
	case Metal:
		return "Metal"
	case Plastic:
		return "Plastic"
	case Ceramic:
		return "Ceramic"
	case Soft:
		return "Soft"
	case Special:
		return "Special"
	}
	return "Unknown"
}

// MaterialDefinition is one physically-based surface preset. The base
// channels (color, metalness, roughness, environment intensity) are always
// meaningful; the feature channels are only populated for "special"
// surfaces, and at most one feature family per definition.
type MaterialDefinition struct {
	Name                 string
	Category             Category
	BaseColor            mgl32.Vec3
	Metalness            float32
	Roughness            float32
	EnvironmentIntensity float32

	// Transmissive surfaces (glass-like).
	Transmission float32
	Thickness    float32

	// Emissive surfaces. The emissive channel counts as set when the
	// color is non-black.
	EmissiveColor     mgl32.Vec3
	EmissiveIntensity float32

	// Thin-film interference surfaces.
	Iridescence    float32
	IridescenceIOR float32
}

// HasEmissive reports whether the emissive channel is populated.
func (m MaterialDefinition) HasEmissive() bool {
	return m.EmissiveColor != (mgl32.Vec3{})
}

// DisplayColor is the representative swatch color for selection UIs:
// emissive surfaces show their glow color, everything else its base color.
func (m MaterialDefinition) DisplayColor() mgl32.Vec3 {
	if m.HasEmissive() {
		return m.EmissiveColor
	}
	return m.BaseColor
}

// FormatChannel renders a [0,1]-ish channel value the way the selection
// panel displays it.
func FormatChannel(v float32) string {
	return fmt.Sprintf("%.2f", v)
}

var materials = newRegistry[MaterialDefinition]()

func addMaterial(key string, def MaterialDefinition) {
	// Absent environment intensity means the preset author left the
	// backdrop contribution at its natural level.
	if def.EnvironmentIntensity == 0 {
		def.EnvironmentIntensity = 1
	}
	materials.add(key, def)
}

// Material looks up a preset by key. Keys come only from MaterialKeys, so a
// miss panics.
func Material(key string) MaterialDefinition {
	return materials.lookup(key)
}

// MaterialKeys lists preset keys in declaration order.
func MaterialKeys() []string {
	return materials.orderedKeys()
}

func init() {
	addMaterial("chrome", MaterialDefinition{
		Name:                 "Chrome",
		Category:             Metal,
		BaseColor:            mgl32.Vec3{0.9, 0.9, 0.95},
		Metalness:            1.0,
		Roughness:            0.05,
		EnvironmentIntensity: 1.5,
	})
	addMaterial("gold", MaterialDefinition{
		Name:                 "Gold",
		Category:             Metal,
		BaseColor:            mgl32.Vec3{1.0, 0.766, 0.336},
		Metalness:            1.0,
		Roughness:            0.15,
		EnvironmentIntensity: 1.2,
	})
	addMaterial("copper", MaterialDefinition{
		Name:      "Copper",
		Category:  Metal,
		BaseColor: mgl32.Vec3{0.955, 0.637, 0.538},
		Metalness: 1.0,
		Roughness: 0.25,
	})
	addMaterial("brushed-steel", MaterialDefinition{
		Name:      "Brushed Steel",
		Category:  Metal,
		BaseColor: mgl32.Vec3{0.75, 0.77, 0.8},
		Metalness: 1.0,
		Roughness: 0.45,
	})
	addMaterial("glossy-red", MaterialDefinition{
		Name:      "Glossy Red",
		Category:  Plastic,
		BaseColor: mgl32.Vec3{0.8, 0.05, 0.05},
		Metalness: 0.0,
		Roughness: 0.1,
	})
	addMaterial("matte-blue", MaterialDefinition{
		Name:      "Matte Blue",
		Category:  Plastic,
		BaseColor: mgl32.Vec3{0.12, 0.25, 0.8},
		Metalness: 0.0,
		Roughness: 0.9,
	})
	addMaterial("porcelain", MaterialDefinition{
		Name:                 "Porcelain",
		Category:             Ceramic,
		BaseColor:            mgl32.Vec3{0.95, 0.93, 0.88},
		Metalness:            0.0,
		Roughness:            0.05,
		EnvironmentIntensity: 1.2,
	})
	addMaterial("terracotta", MaterialDefinition{
		Name:      "Terracotta",
		Category:  Ceramic,
		BaseColor: mgl32.Vec3{0.72, 0.32, 0.18},
		Metalness: 0.0,
		Roughness: 0.8,
	})
	addMaterial("rubber", MaterialDefinition{
		Name:                 "Rubber",
		Category:             Soft,
		BaseColor:            mgl32.Vec3{0.08, 0.08, 0.09},
		Metalness:            0.0,
		Roughness:            1.0,
		EnvironmentIntensity: 0.5,
	})
	addMaterial("velvet", MaterialDefinition{
		Name:                 "Velvet",
		Category:             Soft,
		BaseColor:            mgl32.Vec3{0.35, 0.02, 0.08},
		Metalness:            0.0,
		Roughness:            0.95,
		EnvironmentIntensity: 0.6,
	})
	addMaterial("glass", MaterialDefinition{
		Name:         "Glass",
		Category:     Special,
		BaseColor:    mgl32.Vec3{1, 1, 1},
		Metalness:    0.0,
		Roughness:    0.05,
		Transmission: 0.95,
		Thickness:    0.5,
	})
	addMaterial("frosted-glass", MaterialDefinition{
		Name:         "Frosted Glass",
		Category:     Special,
		BaseColor:    mgl32.Vec3{1, 1, 1},
		Metalness:    0.0,
		Roughness:    0.4,
		Transmission: 0.9,
		Thickness:    0.8,
	})
	addMaterial("neon", MaterialDefinition{
		Name:              "Neon",
		Category:          Special,
		BaseColor:         mgl32.Vec3{0.05, 0.05, 0.05},
		Metalness:         0.0,
		Roughness:         0.3,
		EmissiveColor:     mgl32.Vec3{0.1, 1.0, 0.6},
		EmissiveIntensity: 2.5,
	})
	addMaterial("holographic", MaterialDefinition{
		Name:           "Holographic",
		Category:       Special,
		BaseColor:      mgl32.Vec3{0.8, 0.8, 0.9},
		Metalness:      0.7,
		Roughness:      0.15,
		Iridescence:    1.0,
		IridescenceIOR: 1.5,
	})
}
