package engine

import (
	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Recorder is a headless backend: it keeps the most recent frame
// description instead of drawing. Used by tests and by UI layers that only
// need the composed values.
type Recorder struct {
	frames int
	last   scene.Description
	seen   bool
}

func (r *Recorder) Init(width, height int32, window *glfw.Window) error { return nil }

func (r *Recorder) Draw(desc *scene.Description, elapsed float64) {
	r.last = *desc
	r.seen = true
	r.frames++
}

func (r *Recorder) UpdateViewport(width, height int32) {}
func (r *Recorder) Cleanup()                           {}

func (r *Recorder) Frames() int { return r.frames }

// LastFrame returns the most recent description, or false before any draw.
func (r *Recorder) LastFrame() (scene.Description, bool) {
	return r.last, r.seen
}
