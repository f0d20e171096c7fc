package main

import (
	"os"

	"github.com/NeueNeo/material-lab/internal/engine"
	"github.com/NeueNeo/material-lab/internal/logger"
	"github.com/NeueNeo/material-lab/internal/state"
	"go.uber.org/zap"
)

// Keyboard-driven material preview. M/S/E cycle material, shape and
// environment; P toggles post-processing, A antialiasing, [ and ] adjust
// backdrop blur.
func main() {
	logger.Init()

	selection := state.New()
	preview := engine.NewPreview(selection, &engine.Flat{})

	if err := preview.Run(); err != nil {
		logger.Log.Error("preview failed", zap.Error(err))
		os.Exit(1)
	}
}
