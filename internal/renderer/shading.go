package renderer

import (
	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/go-gl/mathgl/mgl32"
)

type ShadingModel int

const (
	ShadingStandard ShadingModel = iota
	ShadingPhysical
)

func (m ShadingModel) String() string {
	if m == ShadingPhysical {
		return "physical"
	}
	return "standard"
}

// StandardShading carries the parameters of the standard metalness/roughness
// path, plus the optional emissive channel.
type StandardShading struct {
	BaseColor            mgl32.Vec3
	Metalness            float32
	Roughness            float32
	EnvironmentIntensity float32
	EmissiveColor        mgl32.Vec3
	EmissiveIntensity    float32
}

// PhysicalShading carries the extended path used for transmissive and
// iridescent surfaces. It has no emissive channel.
type PhysicalShading struct {
	BaseColor            mgl32.Vec3
	Metalness            float32
	Roughness            float32
	EnvironmentIntensity float32
	Transmission         float32
	Thickness            float32
	Iridescence          float32
	IridescenceIOR       float32
}

// ResolvedShading is a two-variant sum: exactly one of Standard/Physical is
// non-nil, matching Model.
type ResolvedShading struct {
	Model    ShadingModel
	Standard *StandardShading
	Physical *PhysicalShading
}

// Resolve maps a material preset onto a concrete shading configuration.
// Transmission or iridescence forces the physical path; on that path any
// emissive channel is dropped, since the physical model has none here.
// Pure and total: every catalog definition resolves, and the same
// definition always resolves identically.
func Resolve(def catalog.MaterialDefinition) ResolvedShading {
	if def.Transmission > 0 || def.Iridescence > 0 {
		return ResolvedShading{
			Model: ShadingPhysical,
			Physical: &PhysicalShading{
				BaseColor:            def.BaseColor,
				Metalness:            def.Metalness,
				Roughness:            def.Roughness,
				EnvironmentIntensity: def.EnvironmentIntensity,
				Transmission:         def.Transmission,
				Thickness:            def.Thickness,
				Iridescence:          def.Iridescence,
				IridescenceIOR:       def.IridescenceIOR,
			},
		}
	}

	standard := &StandardShading{
		BaseColor:            def.BaseColor,
		Metalness:            def.Metalness,
		Roughness:            def.Roughness,
		EnvironmentIntensity: def.EnvironmentIntensity,
	}
	if def.HasEmissive() {
		standard.EmissiveColor = def.EmissiveColor
		standard.EmissiveIntensity = def.EmissiveIntensity
	}
	return ResolvedShading{Model: ShadingStandard, Standard: standard}
}
