// Control panel for the material preview: selection widgets bound to the
// shared selection state, plus the derived display values (category,
// formatted channels, swatch color). Composition runs through the headless
// recorder backend, so the panel works without a GPU window.
package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/NeueNeo/material-lab/internal/catalog"
	"github.com/NeueNeo/material-lab/internal/engine"
	"github.com/NeueNeo/material-lab/internal/logger"
	"github.com/NeueNeo/material-lab/internal/scene"
	"github.com/NeueNeo/material-lab/internal/state"
)

func main() {
	logger.Init()

	selection := state.New()
	recorder := &engine.Recorder{}

	a := app.New()
	window := a.NewWindow("material-lab")

	swatch := canvas.NewRectangle(color.NRGBA{A: 255})
	swatch.SetMinSize(fyne.NewSize(56, 56))
	backdropPreview := canvas.NewImageFromImage(nil)
	backdropPreview.SetMinSize(fyne.NewSize(128, 128))
	details := widget.NewLabel("")

	recompose := func() {
		snap := selection.Snapshot()
		desc := scene.Compose(snap, 0)
		recorder.Draw(&desc, 0)

		def := catalog.Material(snap.MaterialKey)
		swatch.FillColor = toNRGBA(def.DisplayColor())
		canvas.Refresh(swatch)
		backdropPreview.Image = desc.Backdrop.FallbackImage(128)
		backdropPreview.Refresh()
		details.SetText(fmt.Sprintf(
			"%s — %s\nmetalness %s · roughness %s · environment %s\nshading path: %s",
			def.Name,
			def.Category.Label(),
			catalog.FormatChannel(def.Metalness),
			catalog.FormatChannel(def.Roughness),
			catalog.FormatChannel(def.EnvironmentIntensity),
			desc.Object.Shading.Model,
		))
	}

	materialSelect := widget.NewSelect(catalog.MaterialKeys(), func(key string) {
		selection.SetMaterial(key)
		recompose()
	})
	shapeSelect := widget.NewSelect(catalog.ShapeKeys(), func(key string) {
		selection.SetShape(key)
		recompose()
	})
	environmentSelect := widget.NewSelect(catalog.EnvironmentKeys(), func(key string) {
		selection.SetEnvironment(key)
		recompose()
	})

	blur := widget.NewSlider(0, 1)
	blur.Step = 0.05
	blur.OnChanged = func(v float64) {
		selection.SetBackgroundBlur(float32(v))
		recompose()
	}

	postCheck := widget.NewCheck("Post-processing", func(on bool) {
		selection.SetPostProcessing(on)
		recompose()
	})
	aaCheck := widget.NewCheck("Antialiasing", func(on bool) {
		selection.SetAntialias(on)
		recompose()
	})
	panelCheck := widget.NewCheck("Show details", func(open bool) {
		selection.SetPanelOpen(open)
		if open {
			details.Show()
		} else {
			details.Hide()
		}
	})

	// Seed the widgets from the defaults; each SetX triggers a recompose.
	defaults := selection.Snapshot()
	materialSelect.SetSelected(defaults.MaterialKey)
	shapeSelect.SetSelected(defaults.ShapeKey)
	environmentSelect.SetSelected(defaults.EnvironmentKey)
	blur.SetValue(float64(defaults.BackgroundBlur))
	postCheck.SetChecked(defaults.PostProcessing)
	aaCheck.SetChecked(defaults.Antialias)
	panelCheck.SetChecked(defaults.PanelOpen)

	window.SetContent(container.NewVBox(
		widget.NewLabel("Material"),
		materialSelect,
		widget.NewLabel("Shape"),
		shapeSelect,
		widget.NewLabel("Environment"),
		environmentSelect,
		widget.NewLabel("Background blur"),
		blur,
		postCheck,
		aaCheck,
		panelCheck,
		swatch,
		backdropPreview,
		details,
	))
	window.ShowAndRun()
}

func toNRGBA(c mgl32.Vec3) color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.X()),
		G: channelByte(c.Y()),
		B: channelByte(c.Z()),
		A: 255,
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
