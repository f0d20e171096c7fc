// Package loader builds CPU-side geometry for the shape catalog's
// primitives, so preview backends have meshes without any asset files.
// Vertex data uses flat float32 arrays, 3 components per vertex.
package loader

import (
	"fmt"
	"math"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/go-gl/mathgl/mgl32"
)

type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) / 3 }

func (m *Mesh) appendVertex(pos, normal mgl32.Vec3) {
	m.Vertices = append(m.Vertices, pos.X(), pos.Y(), pos.Z())
	m.Normals = append(m.Normals, normal.X(), normal.Y(), normal.Z())
}

// FromShape dispatches on the primitive kind of a catalog entry.
func FromShape(def catalog.ShapeDefinition) (*Mesh, error) {
	switch def.Kind {
	case catalog.SpherePrimitive:
		return Sphere(def.Radius, def.Segments, def.Rings)
	case catalog.BoxPrimitive:
		return Box(def.Width, def.Height, def.Depth)
	case catalog.TorusPrimitive:
		return Torus(def.Radius, def.Tube, def.Segments, def.Rings)
	case catalog.TorusKnotPrimitive:
		return TorusKnot(def.Radius, def.Tube, def.Segments, def.Rings, def.P, def.Q)
	case catalog.ConePrimitive:
		return Cone(def.Radius, def.Height, def.Segments)
	case catalog.CylinderPrimitive:
		return Cylinder(def.Radius, def.Height, def.Segments)
	}
	return nil, fmt.Errorf("loader: unknown primitive kind %d", def.Kind)
}

// Sphere builds a UV sphere with the given longitudinal segments and
// latitudinal rings.
func Sphere(radius float32, segments, rings int) (*Mesh, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("loader: sphere radius must be positive, got %v", radius)
	}
	if segments < 3 || rings < 2 {
		return nil, fmt.Errorf("loader: sphere needs >=3 segments and >=2 rings, got %d/%d", segments, rings)
	}

	mesh := &Mesh{}
	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			normal := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			mesh.appendVertex(normal.Mul(radius), normal)
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}
	return mesh, nil
}

// Box builds an axis-aligned box centered at the origin, four vertices per
// face so normals stay flat.
func Box(width, height, depth float32) (*Mesh, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("loader: box extents must be positive, got %v/%v/%v", width, height, depth)
	}

	hw, hh, hd := width/2, height/2, depth/2
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hw, -hh, -hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {hw, hh, -hd}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hw, -hh, hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hw, -hh, -hd}, {-hw, -hh, hd}, {-hw, hh, hd}, {-hw, hh, -hd}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hw, hh, hd}, {hw, hh, hd}, {hw, hh, -hd}, {-hw, hh, -hd}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
	}

	mesh := &Mesh{}
	for _, face := range faces {
		base := uint32(mesh.VertexCount())
		for _, corner := range face.corners {
			mesh.appendVertex(corner, face.normal)
		}
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return mesh, nil
}

// Torus builds a ring of the given major radius with a tube cross-section.
// radialSegments runs around the tube, tubularSegments around the ring.
func Torus(radius, tube float32, radialSegments, tubularSegments int) (*Mesh, error) {
	if radius <= 0 || tube <= 0 {
		return nil, fmt.Errorf("loader: torus radii must be positive, got %v/%v", radius, tube)
	}
	if radialSegments < 3 || tubularSegments < 3 {
		return nil, fmt.Errorf("loader: torus needs >=3 segments each way, got %d/%d", radialSegments, tubularSegments)
	}

	mesh := &Mesh{}
	for j := 0; j <= radialSegments; j++ {
		v := 2 * math.Pi * float64(j) / float64(radialSegments)
		for i := 0; i <= tubularSegments; i++ {
			u := 2 * math.Pi * float64(i) / float64(tubularSegments)

			center := mgl32.Vec3{
				radius * float32(math.Cos(u)),
				0,
				radius * float32(math.Sin(u)),
			}
			pos := mgl32.Vec3{
				(radius + tube*float32(math.Cos(v))) * float32(math.Cos(u)),
				tube * float32(math.Sin(v)),
				(radius + tube*float32(math.Cos(v))) * float32(math.Sin(u)),
			}
			mesh.appendVertex(pos, pos.Sub(center).Normalize())
		}
	}

	stride := uint32(tubularSegments + 1)
	for j := 0; j < radialSegments; j++ {
		for i := 0; i < tubularSegments; i++ {
			a := uint32(j)*stride + uint32(i)
			b := a + stride
			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}
	return mesh, nil
}

// TorusKnot sweeps a tube along a (p,q) torus knot curve.
func TorusKnot(radius, tube float32, radialSegments, tubularSegments, p, q int) (*Mesh, error) {
	if radius <= 0 || tube <= 0 {
		return nil, fmt.Errorf("loader: torus knot radii must be positive, got %v/%v", radius, tube)
	}
	if radialSegments < 3 || tubularSegments < 3 {
		return nil, fmt.Errorf("loader: torus knot needs >=3 segments each way, got %d/%d", radialSegments, tubularSegments)
	}
	if p < 1 || q < 1 {
		return nil, fmt.Errorf("loader: torus knot winding must be >=1, got p=%d q=%d", p, q)
	}

	knotPoint := func(u float64) mgl32.Vec3 {
		cu := math.Cos(u)
		su := math.Sin(u)
		quOverP := float64(q) / float64(p) * u
		cs := math.Cos(quOverP)
		r := float64(radius) * (2 + cs) * 0.5
		return mgl32.Vec3{
			float32(r * cu),
			float32(float64(radius) * math.Sin(quOverP) * 0.5),
			float32(r * su),
		}
	}

	mesh := &Mesh{}
	for i := 0; i <= tubularSegments; i++ {
		u := float64(i) / float64(tubularSegments) * float64(p) * 2 * math.Pi

		// Frenet-style frame from two nearby curve points.
		p1 := knotPoint(u)
		p2 := knotPoint(u + 0.01)
		tangent := p2.Sub(p1)
		normal := p2.Add(p1)
		binormal := tangent.Cross(normal).Normalize()
		normal = binormal.Cross(tangent).Normalize()

		for j := 0; j <= radialSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(radialSegments)
			cx := tube * float32(-math.Cos(v))
			cy := tube * float32(math.Sin(v))

			offset := normal.Mul(cx).Add(binormal.Mul(cy))
			mesh.appendVertex(p1.Add(offset), offset.Normalize())
		}
	}

	stride := uint32(radialSegments + 1)
	for i := 0; i < tubularSegments; i++ {
		for j := 0; j < radialSegments; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				b, b+1, a+1,
			)
		}
	}
	return mesh, nil
}

// Cone builds an upright cone with its base on the plane y = -height/2.
func Cone(radius, height float32, segments int) (*Mesh, error) {
	return lathe(radius, 0, height, segments)
}

// Cylinder builds an upright cylinder centered at the origin.
func Cylinder(radius, height float32, segments int) (*Mesh, error) {
	return lathe(radius, radius, height, segments)
}

// lathe builds a capped solid of revolution with straight sides running
// from bottomRadius up to topRadius.
func lathe(bottomRadius, topRadius, height float32, segments int) (*Mesh, error) {
	if bottomRadius <= 0 || height <= 0 {
		return nil, fmt.Errorf("loader: radius and height must be positive, got %v/%v", bottomRadius, height)
	}
	if segments < 3 {
		return nil, fmt.Errorf("loader: need >=3 segments, got %d", segments)
	}

	mesh := &Mesh{}
	halfH := height / 2
	slope := (bottomRadius - topRadius) / height

	// Side wall.
	for _, level := range []struct {
		y, r float32
	}{{-halfH, bottomRadius}, {halfH, topRadius}} {
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))
			normal := mgl32.Vec3{cos, slope, sin}.Normalize()
			mesh.appendVertex(mgl32.Vec3{level.r * cos, level.y, level.r * sin}, normal)
		}
	}
	stride := uint32(segments + 1)
	for seg := 0; seg < segments; seg++ {
		a := uint32(seg)
		b := a + stride
		mesh.Indices = append(mesh.Indices,
			a, a+1, b,
			b, a+1, b+1,
		)
	}

	// Caps.
	addCap := func(y, r float32, up bool) {
		if r <= 0 {
			return
		}
		normal := mgl32.Vec3{0, 1, 0}
		if !up {
			normal = mgl32.Vec3{0, -1, 0}
		}
		center := uint32(mesh.VertexCount())
		mesh.appendVertex(mgl32.Vec3{0, y, 0}, normal)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			mesh.appendVertex(mgl32.Vec3{
				r * float32(math.Cos(theta)),
				y,
				r * float32(math.Sin(theta)),
			}, normal)
		}
		for seg := 0; seg < segments; seg++ {
			a := center + 1 + uint32(seg)
			if up {
				mesh.Indices = append(mesh.Indices, center, a+1, a)
			} else {
				mesh.Indices = append(mesh.Indices, center, a, a+1)
			}
		}
	}
	addCap(-halfH, bottomRadius, false)
	addCap(halfH, topRadius, true)

	return mesh, nil
}
