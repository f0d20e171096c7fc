package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit constraints for the preview camera. Fixed for every scene.
const (
	MinOrbitDistance float32 = 2.5
	MaxOrbitDistance float32 = 8.0
	MinPolarDeg      float32 = 30.0 // measured down from the vertical axis
	MaxPolarDeg      float32 = 90.0
	AutoRotateDegSec float32 = 12.0
)

// OrbitCamera circles a fixed target at a bounded distance and polar angle.
// It rotates slowly on its own; a user drag pauses the auto-rotation and
// releasing the drag resumes it.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Distance    float32
	AzimuthDeg  float32
	PolarDeg    float32
	Sensitivity float32
	Fov         float32
	Near        float32
	Far         float32
	AspectRatio float32

	dragging bool
}

func NewOrbitCamera(width, height int32) *OrbitCamera {
	return &OrbitCamera{
		Target:      mgl32.Vec3{0, 0, 0},
		Distance:    5.0,
		AzimuthDeg:  0,
		PolarDeg:    60,
		Sensitivity: 0.25,
		Fov:         45.0,
		Near:        0.1,
		Far:         100.0,
		AspectRatio: float32(width) / float32(height),
	}
}

func (c *OrbitCamera) BeginDrag() { c.dragging = true }
func (c *OrbitCamera) EndDrag()   { c.dragging = false }

func (c *OrbitCamera) Dragging() bool { return c.dragging }

// Update advances the auto-rotation. Paused while the user drags.
func (c *OrbitCamera) Update(deltaTime float64) {
	if c.dragging {
		return
	}
	c.AzimuthDeg += AutoRotateDegSec * float32(deltaTime)
	for c.AzimuthDeg >= 360 {
		c.AzimuthDeg -= 360
	}
}

// ProcessMouseMovement applies a drag delta in screen pixels.
func (c *OrbitCamera) ProcessMouseMovement(xoffset, yoffset float32) {
	c.AzimuthDeg -= xoffset * c.Sensitivity
	c.PolarDeg = clamp(c.PolarDeg+yoffset*c.Sensitivity, MinPolarDeg, MaxPolarDeg)
}

// Dolly moves the camera along the view ray, clamped to the orbit bounds.
func (c *OrbitCamera) Dolly(offset float32) {
	c.Distance = clamp(c.Distance-offset, MinOrbitDistance, MaxOrbitDistance)
}

// Position converts the spherical orbit coordinates to world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	azimuth := float64(mgl32.DegToRad(c.AzimuthDeg))
	polar := float64(mgl32.DegToRad(c.PolarDeg))
	horizontal := c.Distance * float32(math.Sin(polar))
	return mgl32.Vec3{
		c.Target.X() + horizontal*float32(math.Cos(azimuth)),
		c.Target.Y() + c.Distance*float32(math.Cos(polar)),
		c.Target.Z() + horizontal*float32(math.Sin(azimuth)),
	}
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *OrbitCamera) UpdateAspectRatio(width, height int32) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
