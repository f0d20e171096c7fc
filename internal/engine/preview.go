package engine

import (
	"fmt"
	"runtime"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/NeueNeo/material-lab/internal/loader"
	"github.com/NeueNeo/material-lab/internal/logger"
	"github.com/NeueNeo/material-lab/internal/renderer"
	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/NeueNeo/material-lab/internal/state"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Preview owns the window, the frame clock and the input wiring. Every
// frame it recomposes the scene from the current selection (pull model) and
// hands the description to the backend.
type Preview struct {
	Width     int32
	Height    int32
	Title     string
	Selection *state.Selection

	backend Renderer
	camera  *renderer.OrbitCamera
	window  *glfw.Window

	lastX, lastY float64
	firstMouse   bool
}

func NewPreview(selection *state.Selection, backend Renderer) *Preview {
	logger.Init()
	return &Preview{
		Width:      1280,
		Height:     720,
		Title:      "material-lab",
		Selection:  selection,
		backend:    backend,
		firstMouse: true,
	}
}

func (p *Preview) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// Hardware MSAA is fixed at window creation; flipping the antialias
	// toggle afterwards only takes effect on the next launch.
	glfw.WindowHint(glfw.Samples, renderer.MSAASamples(p.Selection.Snapshot().Antialias))

	window, err := glfw.CreateWindow(int(p.Width), int(p.Height), p.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	p.window = window
	window.MakeContextCurrent()

	p.camera = renderer.NewOrbitCamera(p.Width, p.Height)

	if err := p.backend.Init(p.Width, p.Height, window); err != nil {
		return fmt.Errorf("initialize backend: %w", err)
	}

	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetCursorPosCallback(p.cursorPosCallback)
	window.SetScrollCallback(p.scrollCallback)
	window.SetKeyCallback(p.keyCallback)

	logger.Log.Info("preview running",
		zap.Int("materials", len(catalog.MaterialKeys())),
		zap.Int("shapes", len(catalog.ShapeKeys())),
		zap.Int("environments", len(catalog.EnvironmentKeys())),
	)

	p.renderLoop()
	p.backend.Cleanup()
	return nil
}

func (p *Preview) renderLoop() {
	lastTime := glfw.GetTime()

	for !p.window.ShouldClose() {
		now := glfw.GetTime()
		deltaTime := now - lastTime
		lastTime = now

		width, height := p.window.GetSize()
		if int32(width) != p.Width || int32(height) != p.Height {
			p.Width, p.Height = int32(width), int32(height)
			p.backend.UpdateViewport(p.Width, p.Height)
			p.camera.UpdateAspectRatio(p.Width, p.Height)
		}

		p.camera.Update(deltaTime)

		desc := scene.Compose(p.Selection.Snapshot(), now)
		p.backend.Draw(&desc, now)

		p.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (p *Preview) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft && button != glfw.MouseButtonRight {
		return
	}
	switch action {
	case glfw.Press:
		p.camera.BeginDrag()
		p.firstMouse = true
	case glfw.Release:
		p.camera.EndDrag()
	}
}

func (p *Preview) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !p.camera.Dragging() {
		return
	}
	if p.firstMouse {
		p.lastX, p.lastY = xpos, ypos
		p.firstMouse = false
		return
	}
	xoffset := xpos - p.lastX
	yoffset := p.lastY - ypos
	p.lastX, p.lastY = xpos, ypos
	p.camera.ProcessMouseMovement(float32(xoffset), float32(yoffset))
}

func (p *Preview) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.camera.Dolly(float32(yoff) * 0.25)
}

func (p *Preview) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	snap := p.Selection.Snapshot()

	switch key {
	case glfw.KeyM:
		next := cycleKey(catalog.MaterialKeys(), snap.MaterialKey)
		p.Selection.SetMaterial(next)
		def := catalog.Material(next)
		logger.Log.Info("material selected",
			zap.String("key", next),
			zap.String("category", def.Category.Label()),
			zap.String("metalness", catalog.FormatChannel(def.Metalness)),
			zap.String("roughness", catalog.FormatChannel(def.Roughness)),
		)
	case glfw.KeyS:
		next := cycleKey(catalog.ShapeKeys(), snap.ShapeKey)
		p.Selection.SetShape(next)
		if mesh, err := loader.FromShape(catalog.Shape(next)); err == nil {
			logger.Log.Info("shape selected",
				zap.String("key", next),
				zap.Int("vertices", mesh.VertexCount()),
				zap.Int("triangles", len(mesh.Indices)/3),
			)
		} else {
			logger.Log.Error("shape mesh generation failed", zap.String("key", next), zap.Error(err))
		}
	case glfw.KeyE:
		next := cycleKey(catalog.EnvironmentKeys(), snap.EnvironmentKey)
		p.Selection.SetEnvironment(next)
		logger.Log.Info("environment selected", zap.String("key", next))
	case glfw.KeyP:
		p.Selection.SetPostProcessing(!snap.PostProcessing)
		logger.Log.Info("post-processing toggled", zap.Bool("enabled", !snap.PostProcessing))
	case glfw.KeyA:
		p.Selection.SetAntialias(!snap.Antialias)
		logger.Log.Info("antialias toggled; takes effect on next launch", zap.Bool("enabled", !snap.Antialias))
	case glfw.KeyLeftBracket:
		p.Selection.SetBackgroundBlur(snap.BackgroundBlur - 0.1)
	case glfw.KeyRightBracket:
		p.Selection.SetBackgroundBlur(snap.BackgroundBlur + 0.1)
	case glfw.KeyTab:
		p.Selection.SetPanelOpen(!snap.PanelOpen)
	}
}

// cycleKey steps to the next key in declaration order, wrapping at the end.
func cycleKey(keys []string, current string) string {
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}
