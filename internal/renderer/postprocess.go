package renderer

// PostProcessing describes the optional bloom + vignette stage appended to
// the render when effects are enabled. Values are fixed; the stage is
// either present with these settings or absent entirely.
type PostProcessing struct {
	BloomThreshold   float32
	BloomIntensity   float32
	VignetteDarkness float32
}

func DefaultPostProcessing() PostProcessing {
	return PostProcessing{
		BloomThreshold:   0.8,
		BloomIntensity:   0.4,
		VignetteDarkness: 0.5,
	}
}

// MSAASamples maps the antialias toggle to a hardware sample count, applied
// at window creation.
func MSAASamples(antialias bool) int {
	if antialias {
		return 4
	}
	return 0
}
