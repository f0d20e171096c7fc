package catalog

import "github.com/go-gl/mathgl/mgl32"

// EnvironmentDefinition names a prebuilt lighting/reflection environment.
// Preset is the identifier handed to the rendering layer's environment
// loader; Tint is the representative color preview backends clear to while
// the real map is still resolving.
type EnvironmentDefinition struct {
	Name   string
	Preset string
	Tint   mgl32.Vec3
}

var environments = newRegistry[EnvironmentDefinition]()

func Environment(key string) EnvironmentDefinition {
	return environments.lookup(key)
}

func EnvironmentKeys() []string {
	return environments.orderedKeys()
}

func init() {
	environments.add("studio", EnvironmentDefinition{
		Name: "Studio", Preset: "studio", Tint: mgl32.Vec3{0.42, 0.42, 0.45},
	})
	environments.add("sunset", EnvironmentDefinition{
		Name: "Sunset", Preset: "sunset", Tint: mgl32.Vec3{0.85, 0.45, 0.25},
	})
	environments.add("forest", EnvironmentDefinition{
		Name: "Forest", Preset: "forest", Tint: mgl32.Vec3{0.18, 0.32, 0.2},
	})
	environments.add("city", EnvironmentDefinition{
		Name: "City", Preset: "city", Tint: mgl32.Vec3{0.35, 0.38, 0.48},
	})
	environments.add("night", EnvironmentDefinition{
		Name: "Night", Preset: "night", Tint: mgl32.Vec3{0.05, 0.06, 0.12},
	})
	environments.add("dawn", EnvironmentDefinition{
		Name: "Dawn", Preset: "dawn", Tint: mgl32.Vec3{0.7, 0.55, 0.5},
	})
}
