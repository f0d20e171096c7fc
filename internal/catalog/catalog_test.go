package catalog

import "testing"

func TestEveryKeyResolves(t *testing.T) {
	for _, k := range MaterialKeys() {
		if Material(k).Name == "" {
			t.Errorf("material %q has no display name", k)
		}
	}
	for _, k := range ShapeKeys() {
		if Shape(k).Name == "" {
			t.Errorf("shape %q has no display name", k)
		}
	}
	for _, k := range EnvironmentKeys() {
		if Environment(k).Preset == "" {
			t.Errorf("environment %q has no preset name", k)
		}
	}
}

func TestUnknownKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("lookup of unknown key should panic")
		}
	}()
	Material("no-such-material")
}

func TestKeysAreDeclarationOrdered(t *testing.T) {
	keys := MaterialKeys()
	if len(keys) == 0 || keys[0] != "chrome" {
		t.Fatalf("expected chrome first, got %v", keys)
	}
	// Keys() hands out a copy; scribbling on it must not corrupt the registry.
	keys[0] = "corrupted"
	if MaterialKeys()[0] != "chrome" {
		t.Fatal("registry order was mutated through Keys()")
	}
}

func TestChromePresetValues(t *testing.T) {
	chrome := Material("chrome")
	if chrome.Metalness != 1.0 {
		t.Errorf("chrome metalness = %v, want 1.0", chrome.Metalness)
	}
	if chrome.Roughness != 0.05 {
		t.Errorf("chrome roughness = %v, want 0.05", chrome.Roughness)
	}
	if chrome.EnvironmentIntensity != 1.5 {
		t.Errorf("chrome environment intensity = %v, want 1.5", chrome.EnvironmentIntensity)
	}
}

func TestEnvironmentIntensityDefaultsToOne(t *testing.T) {
	for _, k := range MaterialKeys() {
		if got := Material(k).EnvironmentIntensity; got <= 0 {
			t.Errorf("material %q environment intensity = %v, want > 0", k, got)
		}
	}
}

func TestDisplayColorPrefersEmissive(t *testing.T) {
	neon := Material("neon")
	if !neon.HasEmissive() {
		t.Fatal("neon should have an emissive channel")
	}
	if neon.DisplayColor() != neon.EmissiveColor {
		t.Error("emissive material should display its emissive color")
	}
	gold := Material("gold")
	if gold.DisplayColor() != gold.BaseColor {
		t.Error("non-emissive material should display its base color")
	}
}

func TestOneFeatureFamilyPerMaterial(t *testing.T) {
	for _, k := range MaterialKeys() {
		m := Material(k)
		families := 0
		if m.Transmission > 0 {
			families++
		}
		if m.Iridescence > 0 {
			families++
		}
		if m.HasEmissive() {
			families++
		}
		if families > 1 {
			t.Errorf("material %q populates %d feature families, want at most 1", k, families)
		}
	}
}
