// Package state holds the single mutable entity of the preview tool: the
// user's current selection. Mutation goes through whole-field setters only;
// everything downstream reads an immutable snapshot.
package state

// Snapshot is a value copy of the selection, safe to hand to composers and
// UI code. Keys are always drawn from the catalogs' own key listings.
type Snapshot struct {
	ShapeKey       string
	MaterialKey    string
	EnvironmentKey string
	BackgroundBlur float32
	PostProcessing bool
	Antialias      bool
	PanelOpen      bool
}

type Selection struct {
	snap Snapshot
}

// New returns the session defaults: a chrome sphere in the studio
// environment, effects and antialiasing on, panel open.
func New() *Selection {
	return &Selection{snap: Snapshot{
		ShapeKey:       "sphere",
		MaterialKey:    "chrome",
		EnvironmentKey: "studio",
		BackgroundBlur: 0.6,
		PostProcessing: true,
		Antialias:      true,
		PanelOpen:      true,
	}}
}

func (s *Selection) Snapshot() Snapshot { return s.snap }

func (s *Selection) SetShape(key string)       { s.snap.ShapeKey = key }
func (s *Selection) SetMaterial(key string)    { s.snap.MaterialKey = key }
func (s *Selection) SetEnvironment(key string) { s.snap.EnvironmentKey = key }

// SetBackgroundBlur clamps to [0,1]; out-of-range slider values are the one
// input the state sanitizes itself.
func (s *Selection) SetBackgroundBlur(v float32) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.snap.BackgroundBlur = v
}

func (s *Selection) SetPostProcessing(enabled bool) { s.snap.PostProcessing = enabled }
func (s *Selection) SetAntialias(enabled bool)      { s.snap.Antialias = enabled }
func (s *Selection) SetPanelOpen(open bool)         { s.snap.PanelOpen = open }
