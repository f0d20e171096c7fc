package renderer

import (
	"testing"

	"github.com/NeueNeo/material-lab/internal/catalog"
)

func TestFallbackImageIsDeterministicPerPreset(t *testing.T) {
	env := catalog.Environment("studio")
	b := NewBackdrop(env, 0.6)
	first := b.FallbackImage(32)
	second := b.FallbackImage(32)
	if len(first.Pix) != len(second.Pix) {
		t.Fatal("fallback image sizes differ")
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixel %d differs between two generations of the same preset", i)
		}
	}
}

func TestFallbackImagesDifferAcrossPresets(t *testing.T) {
	studio := NewBackdrop(catalog.Environment("studio"), 0).FallbackImage(32)
	sunset := NewBackdrop(catalog.Environment("sunset"), 0).FallbackImage(32)
	same := true
	for i := range studio.Pix {
		if studio.Pix[i] != sunset.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different presets produced identical fallback images")
	}
}

func TestClearColorBlursTowardGrey(t *testing.T) {
	env := catalog.Environment("night")
	sharp := NewBackdrop(env, 0).ClearColor()
	blurred := NewBackdrop(env, 1).ClearColor()
	if sharp != env.Tint {
		t.Errorf("unblurred clear color = %v, want the raw tint %v", sharp, env.Tint)
	}
	// Night is darker than neutral grey, so blur must brighten it.
	if blurred.X() <= sharp.X() {
		t.Errorf("blur should pull a dark tint toward grey: %v vs %v", blurred, sharp)
	}
}
