package state

import "testing"

func TestDefaults(t *testing.T) {
	snap := New().Snapshot()
	if snap.ShapeKey != "sphere" || snap.MaterialKey != "chrome" || snap.EnvironmentKey != "studio" {
		t.Errorf("unexpected default keys: %+v", snap)
	}
	if snap.BackgroundBlur != 0.6 {
		t.Errorf("default blur = %v, want 0.6", snap.BackgroundBlur)
	}
	if !snap.PostProcessing || !snap.Antialias || !snap.PanelOpen {
		t.Errorf("default toggles should all be on: %+v", snap)
	}
}

func TestBlurClamp(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{1.7, 1},
	}
	for _, c := range cases {
		sel := New()
		sel.SetBackgroundBlur(c.in)
		if got := sel.Snapshot().BackgroundBlur; got != c.want {
			t.Errorf("SetBackgroundBlur(%v): stored %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSettersReplaceWholeField(t *testing.T) {
	sel := New()
	sel.SetShape("torus")
	sel.SetMaterial("glass")
	sel.SetEnvironment("sunset")
	sel.SetPostProcessing(false)
	sel.SetAntialias(false)
	sel.SetPanelOpen(false)

	snap := sel.Snapshot()
	if snap.ShapeKey != "torus" || snap.MaterialKey != "glass" || snap.EnvironmentKey != "sunset" {
		t.Errorf("setters did not replace keys: %+v", snap)
	}
	if snap.PostProcessing || snap.Antialias || snap.PanelOpen {
		t.Errorf("setters did not replace toggles: %+v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	sel := New()
	snap := sel.Snapshot()
	snap.MaterialKey = "gold"
	if sel.Snapshot().MaterialKey != "chrome" {
		t.Error("mutating a snapshot must not affect the selection")
	}
}
