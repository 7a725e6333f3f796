// Package main is the entry point for the heightscape window viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/config"
	"github.com/Faultbox/heightscape/internal/logger"
	"github.com/Faultbox/heightscape/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== heightscape ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Deferred cleanup lives in run so the exit below skips none of it.
	err = run(cfg)
	if err != nil {
		logger.Error("viewer error", zap.Error(err))
	} else {
		logger.Info("viewer closed normally")
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	hf, err := cfg.Terrain.Build()
	if err != nil {
		return fmt.Errorf("failed to build terrain: %w", err)
	}
	logger.Info("terrain ready", zap.Int("size", hf.Size), zap.String("heightmap", cfg.Terrain.Heightmap))

	v, err := viewer.New(cfg, hf)
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	defer v.Close()

	return v.Run()
}
