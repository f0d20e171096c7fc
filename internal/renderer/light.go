package renderer

import "github.com/go-gl/mathgl/mgl32"

type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Mode      string // "directional", "ambient"
}

func CreateDirectionalLight(position, color mgl32.Vec3, intensity float32) Light {
	return Light{Position: position, Color: color, Intensity: intensity, Mode: "directional"}
}

func CreateAmbientLight(color mgl32.Vec3, intensity float32) Light {
	return Light{Color: color, Intensity: intensity, Mode: "ambient"}
}

// StudioRig is the fixed three-light setup every preview uses: a
// warm-neutral key, a warm fill from the opposite side, and a low ambient
// floor. Not user-configurable.
func StudioRig() []Light {
	return []Light{
		CreateDirectionalLight(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{1.0, 0.98, 0.95}, 0.5),
		CreateDirectionalLight(mgl32.Vec3{-5, 3, -5}, mgl32.Vec3{1.0, 0.9, 0.8}, 0.3),
		CreateAmbientLight(mgl32.Vec3{1, 1, 1}, 0.2),
	}
}
