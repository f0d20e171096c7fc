package engine

import (
	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Renderer is the seam to the rendering engine that actually draws pixels.
// The preview loop hands it one frame description per tick and nothing
// else; backends own all GPU state, asset loading and fallback behavior.
type Renderer interface {
	Init(width, height int32, window *glfw.Window) error
	Draw(desc *scene.Description, elapsed float64)
	UpdateViewport(width, height int32)
	Cleanup()
}
