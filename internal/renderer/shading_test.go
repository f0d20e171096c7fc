package renderer

import (
	"reflect"
	"testing"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/go-gl/mathgl/mgl32"
)

func TestResolveIsTotalAndDeterministic(t *testing.T) {
	for _, key := range catalog.MaterialKeys() {
		def := catalog.Material(key)
		first := Resolve(def)
		second := Resolve(def)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("material %q: two resolves differ", key)
		}
		if (first.Standard == nil) == (first.Physical == nil) {
			t.Errorf("material %q: exactly one shading variant must be set", key)
		}
	}
}

func TestShadingModelSelection(t *testing.T) {
	for _, key := range catalog.MaterialKeys() {
		def := catalog.Material(key)
		resolved := Resolve(def)
		wantPhysical := def.Transmission > 0 || def.Iridescence > 0
		if wantPhysical && resolved.Model != ShadingPhysical {
			t.Errorf("material %q: want physical, got %v", key, resolved.Model)
		}
		if !wantPhysical && resolved.Model != ShadingStandard {
			t.Errorf("material %q: want standard, got %v", key, resolved.Model)
		}
	}
}

func TestEmissiveDefaultsToNoOp(t *testing.T) {
	resolved := Resolve(catalog.Material("gold"))
	if resolved.Standard.EmissiveIntensity != 0 {
		t.Errorf("non-emissive material carries emissive intensity %v", resolved.Standard.EmissiveIntensity)
	}
	if resolved.Standard.EmissiveColor != (mgl32.Vec3{}) {
		t.Errorf("non-emissive material carries emissive color %v", resolved.Standard.EmissiveColor)
	}
}

func TestPhysicalPathDropsEmissive(t *testing.T) {
	// No catalog preset combines transmission with emission; synthesize one
	// to pin down the precedence: physical wins, emission is dropped.
	def := catalog.MaterialDefinition{
		Name:              "Synthetic",
		Category:          catalog.Special,
		BaseColor:         mgl32.Vec3{1, 1, 1},
		Roughness:         0.2,
		Transmission:      0.5,
		EmissiveColor:     mgl32.Vec3{1, 0, 0},
		EmissiveIntensity: 3,
	}
	resolved := Resolve(def)
	if resolved.Model != ShadingPhysical {
		t.Fatalf("want physical, got %v", resolved.Model)
	}
	if resolved.Standard != nil {
		t.Fatal("physical resolution must not populate the standard variant")
	}
	if resolved.Physical.Transmission != 0.5 {
		t.Errorf("transmission = %v, want 0.5", resolved.Physical.Transmission)
	}
}

func TestGlassResolution(t *testing.T) {
	resolved := Resolve(catalog.Material("glass"))
	if resolved.Model != ShadingPhysical {
		t.Fatalf("glass: want physical, got %v", resolved.Model)
	}
	if resolved.Physical.Transmission != 0.95 {
		t.Errorf("glass transmission = %v, want 0.95", resolved.Physical.Transmission)
	}
	if resolved.Physical.Thickness != 0.5 {
		t.Errorf("glass thickness = %v, want 0.5", resolved.Physical.Thickness)
	}
}

func TestHolographicResolution(t *testing.T) {
	resolved := Resolve(catalog.Material("holographic"))
	if resolved.Model != ShadingPhysical {
		t.Fatalf("holographic: want physical, got %v", resolved.Model)
	}
	if resolved.Physical.Iridescence != 1.0 {
		t.Errorf("holographic iridescence = %v, want 1.0", resolved.Physical.Iridescence)
	}
	if resolved.Physical.IridescenceIOR != 1.5 {
		t.Errorf("holographic iridescence IOR = %v, want 1.5", resolved.Physical.IridescenceIOR)
	}
}

func TestNeonKeepsEmissiveOnStandardPath(t *testing.T) {
	resolved := Resolve(catalog.Material("neon"))
	if resolved.Model != ShadingStandard {
		t.Fatalf("neon: want standard, got %v", resolved.Model)
	}
	if resolved.Standard.EmissiveIntensity != 2.5 {
		t.Errorf("neon emissive intensity = %v, want 2.5", resolved.Standard.EmissiveIntensity)
	}
}
