package catalog

type PrimitiveKind int

const (
	SpherePrimitive PrimitiveKind = iota
	BoxPrimitive
	TorusPrimitive
	TorusKnotPrimitive
	ConePrimitive
	CylinderPrimitive
)

// ShapeDefinition names a primitive and the dimensional/tessellation
// arguments its mesh is built from. Unused arguments stay zero.
type ShapeDefinition struct {
	Name string
	Kind PrimitiveKind

	Radius   float32
	Tube     float32 // torus/knot tube radius
	Width    float32
	Height   float32
	Depth    float32
	Segments int // radial or width-wise tessellation
	Rings    int // vertical or tube-wise tessellation
	P, Q     int // torus knot winding
}

var shapes = newRegistry[ShapeDefinition]()

func Shape(key string) ShapeDefinition {
	return shapes.lookup(key)
}

func ShapeKeys() []string {
	return shapes.orderedKeys()
}

func init() {
	shapes.add("sphere", ShapeDefinition{
		Name: "Sphere", Kind: SpherePrimitive,
		Radius: 1.0, Segments: 64, Rings: 32,
	})
	shapes.add("box", ShapeDefinition{
		Name: "Box", Kind: BoxPrimitive,
		Width: 1.4, Height: 1.4, Depth: 1.4,
	})
	shapes.add("torus", ShapeDefinition{
		Name: "Torus", Kind: TorusPrimitive,
		Radius: 0.8, Tube: 0.32, Segments: 48, Rings: 96,
	})
	shapes.add("torus-knot", ShapeDefinition{
		Name: "Torus Knot", Kind: TorusKnotPrimitive,
		Radius: 0.7, Tube: 0.24, Segments: 16, Rings: 128, P: 2, Q: 3,
	})
	shapes.add("cone", ShapeDefinition{
		Name: "Cone", Kind: ConePrimitive,
		Radius: 0.9, Height: 1.6, Segments: 48,
	})
	shapes.add("cylinder", ShapeDefinition{
		Name: "Cylinder", Kind: CylinderPrimitive,
		Radius: 0.7, Height: 1.5, Segments: 48,
	})
}
