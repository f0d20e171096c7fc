package engine

import (
	"fmt"

	"github.com/NeueNeo/material-lab/internal/logger"
	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Flat is the built-in placeholder backend: it establishes the GL context
// state and clears to the environment's fallback color each frame. Shaded
// object rendering belongs to an external engine plugged in through the
// Renderer seam; Flat exists so the preview window works without one.
type Flat struct {
	lastPreset string
	lastModel  string
}

func (f *Flat) Init(width, height int32, window *glfw.Window) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	logger.Log.Info("flat backend ready", zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

func (f *Flat) Draw(desc *scene.Description, elapsed float64) {
	if desc.Backdrop.Preset != f.lastPreset {
		f.lastPreset = desc.Backdrop.Preset
		logger.Log.Info("environment changed", zap.String("preset", f.lastPreset))
	}
	if model := desc.Object.Shading.Model.String(); model != f.lastModel {
		f.lastModel = model
		logger.Log.Info("shading model changed", zap.String("model", model))
	}

	clear := desc.Backdrop.ClearColor()
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (f *Flat) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (f *Flat) Cleanup() {}
