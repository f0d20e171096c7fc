package engine

import (
	"testing"

	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/NeueNeo/material-lab/internal/state"
)

func TestRecorderKeepsLastFrame(t *testing.T) {
	rec := &Recorder{}
	if _, ok := rec.LastFrame(); ok {
		t.Fatal("recorder should start empty")
	}

	sel := state.New()
	first := scene.Compose(sel.Snapshot(), 1.0)
	rec.Draw(&first, 1.0)

	sel.SetMaterial("glass")
	second := scene.Compose(sel.Snapshot(), 2.0)
	rec.Draw(&second, 2.0)

	last, ok := rec.LastFrame()
	if !ok {
		t.Fatal("recorder saw two frames but reports none")
	}
	if last.Object.Shading.Physical == nil {
		t.Error("last frame should carry the glass (physical) shading")
	}
	if rec.Frames() != 2 {
		t.Errorf("frames = %d, want 2", rec.Frames())
	}
}

func TestCycleKeyWrapsInOrder(t *testing.T) {
	keys := []string{"a", "b", "c"}
	if got := cycleKey(keys, "a"); got != "b" {
		t.Errorf(`cycleKey from "a" = %q, want "b"`, got)
	}
	if got := cycleKey(keys, "c"); got != "a" {
		t.Errorf(`cycleKey from "c" = %q, want "a"`, got)
	}
	if got := cycleKey(keys, "missing"); got != "a" {
		t.Errorf(`cycleKey from unknown = %q, want "a"`, got)
	}
}
