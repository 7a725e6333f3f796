// Command heightscape-render renders a single frame to an image file without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/config"
	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/engine/debug"
	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/internal/logger"
)

var (
	flagOut           = flag.String("out", "frame.png", "Output image (.png, .webp or .tga)")
	flagDumpHeightmap = flag.String("dump-heightmap", "", "Also write the heightfield as a grayscale image")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	start := time.Now()
	hf, err := cfg.Terrain.Build()
	if err != nil {
		return err
	}
	logger.Info("terrain ready", zap.Int("size", hf.Size), zap.Duration("elapsed", time.Since(start)))

	if *flagDumpHeightmap != "" {
		if err := debug.WriteImage(*flagDumpHeightmap, hf.Image()); err != nil {
			return fmt.Errorf("dump heightmap: %w", err)
		}
		logger.Info("heightmap written", zap.String("path", *flagDumpHeightmap))
	}

	ctl := camera.NewController(hf.Size)
	cfg.Camera.Apply(ctl)

	surface := raster.NewSurface(cfg.Window.Width, cfg.Window.Height)
	renderer := raster.NewRenderer(cfg.Render.Background)

	start = time.Now()
	renderer.Render(hf, ctl.Projection(surface.Width, surface.Height), surface)
	logger.Info("frame rendered",
		zap.Int("width", surface.Width),
		zap.Int("height", surface.Height),
		zap.Int("painted", renderer.Painted()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err := debug.WriteImage(*flagOut, surface.RGBA()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	logger.Info("frame written", zap.String("path", *flagOut))
	return nil
}
