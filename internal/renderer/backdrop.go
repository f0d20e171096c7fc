package renderer

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Backdrop is the request the scene hands to the rendering layer: which
// environment preset to surround the object with and how blurred the
// backdrop should appear. The same environment also drives reflections, so
// the request is fire-and-forget and the preview shows the fallback until
// the real map resolves.
type Backdrop struct {
	Preset string
	Blur   float32 // [0,1]
	Tint   mgl32.Vec3
}

func NewBackdrop(env catalog.EnvironmentDefinition, blur float32) Backdrop {
	return Backdrop{Preset: env.Preset, Blur: blur, Tint: env.Tint}
}

// ClearColor is the flat color backends clear to before the environment map
// is available. Blur washes the tint toward a neutral grey, approximating
// how a blurred backdrop reads.
func (b Backdrop) ClearColor() mgl32.Vec3 {
	grey := mgl32.Vec3{0.5, 0.5, 0.5}
	return b.Tint.Mul(1 - b.Blur*0.5).Add(grey.Mul(b.Blur * 0.5))
}

// FallbackImage builds a deterministic tinted noise gradient standing in
// for the environment map. The same preset always yields the same image.
func (b Backdrop) FallbackImage(size int) *image.RGBA {
	h := fnv.New64a()
	h.Write([]byte(b.Preset))
	noise := perlin.NewPerlin(2, 2, 3, int64(h.Sum64()))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scale := 4.0 / float64(size)
	for y := 0; y < size; y++ {
		// Vertical gradient: brighter toward the top, like a lit horizon.
		gradient := 0.6 + 0.4*(1-float64(y)/float64(size))
		for x := 0; x < size; x++ {
			n := noise.Noise2D(float64(x)*scale, float64(y)*scale)
			v := gradient * (0.85 + 0.15*n)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(b.Tint.X() * float32(v)),
				G: channelByte(b.Tint.Y() * float32(v)),
				B: channelByte(b.Tint.Z() * float32(v)),
				A: 255,
			})
		}
	}
	return img
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
