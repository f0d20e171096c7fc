// Package scene turns the current selection into a complete frame
// description. Composition is pure: the same selection and elapsed time
// always yield the same description, and each frame's description is
// independent and discarded after the backend consumes it.
package scene

import (
	"math"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/NeueNeo/material-lab/internal/renderer"
	"github.com/NeueNeo/material-lab/internal/state"
	"github.com/go-gl/mathgl/mgl32"
)

// Animation constants for the floating object. Phase is a function of
// elapsed time only, never of selection.
const (
	SpinDegPerSec float32 = 18.0
	BobAmplitude  float32 = 0.12
	BobRadPerSec  float32 = 1.5
)

// Ground contact shadow placement, fixed relative to the object.
const (
	shadowOffsetY  float32 = -1.2
	shadowOpacity  float32 = 0.45
	shadowSoftness float32 = 0.8
	shadowRadius   float32 = 3.0
)

// Object is the single shaded instance in the scene.
type Object struct {
	Shape    catalog.ShapeDefinition
	Shading  renderer.ResolvedShading
	Position mgl32.Vec3
	SpinDeg  float32
}

type GroundShadow struct {
	OffsetY  float32
	Opacity  float32
	Softness float32
	Radius   float32
}

// CameraRig carries the orbit constraints the control layer must enforce.
type CameraRig struct {
	MinDistance      float32
	MaxDistance      float32
	MinPolarDeg      float32
	MaxPolarDeg      float32
	AutoRotateDegSec float32
}

// Description is one renderable frame: lights, backdrop, the floating
// object, its contact shadow, camera constraints and the optional post
// stage. Post is nil when effects are off.
type Description struct {
	Lights       []renderer.Light
	Backdrop     renderer.Backdrop
	Object       Object
	GroundShadow GroundShadow
	Camera       CameraRig
	Post         *renderer.PostProcessing
	MSAASamples  int
}

// Compose builds the frame description for a selection snapshot at the
// given elapsed time. Called once per frame; pure lookups and arithmetic.
func Compose(sel state.Snapshot, elapsed float64) Description {
	shape := catalog.Shape(sel.ShapeKey)
	material := catalog.Material(sel.MaterialKey)
	env := catalog.Environment(sel.EnvironmentKey)

	bob := BobAmplitude * float32(math.Sin(elapsed*float64(BobRadPerSec)))
	spin := float32(math.Mod(float64(SpinDegPerSec)*elapsed, 360))

	desc := Description{
		Lights:   renderer.StudioRig(),
		Backdrop: renderer.NewBackdrop(env, sel.BackgroundBlur),
		Object: Object{
			Shape:    shape,
			Shading:  renderer.Resolve(material),
			Position: mgl32.Vec3{0, bob, 0},
			SpinDeg:  spin,
		},
		GroundShadow: GroundShadow{
			OffsetY:  shadowOffsetY,
			Opacity:  shadowOpacity,
			Softness: shadowSoftness,
			Radius:   shadowRadius,
		},
		Camera: CameraRig{
			MinDistance:      renderer.MinOrbitDistance,
			MaxDistance:      renderer.MaxOrbitDistance,
			MinPolarDeg:      renderer.MinPolarDeg,
			MaxPolarDeg:      renderer.MaxPolarDeg,
			AutoRotateDegSec: renderer.AutoRotateDegSec,
		},
		MSAASamples: renderer.MSAASamples(sel.Antialias),
	}

	if sel.PostProcessing {
		post := renderer.DefaultPostProcessing()
		desc.Post = &post
	}
	return desc
}
