// Command heightscape-term renders the heightfield in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/config"
	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/logger"
	"github.com/Faultbox/heightscape/internal/termview"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The view draws over the whole terminal, so only a configured log file
	// receives output.
	if cfg.Logging.LogFile == "" {
		logger.InitNop()
	} else if err := logger.InitWithFileConfig(cfg.Logging.Level,
		logger.DefaultFileConfig(cfg.Logging.LogFile), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		logger.Error("terminal view error", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	hf, err := cfg.Terrain.Build()
	if err != nil {
		return fmt.Errorf("terrain: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctl := camera.NewController(hf.Size)
	cfg.Camera.Apply(ctl)

	return termview.New(screen, hf, ctl, cfg.Render.Background).Run()
}
