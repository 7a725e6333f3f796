package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/heightscape/internal/config"
)

func TestRunReturnsTerrainError(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.SizeBits = 5
	cfg.Terrain.Heightmap = filepath.Join(t.TempDir(), "missing.png")

	// The terrain fails before any window is created, and the error comes
	// back to main instead of exiting inside run.
	err := run(cfg)
	if err == nil {
		t.Fatal("run() = nil, want terrain error")
	}
	if !strings.Contains(err.Error(), "failed to build terrain") {
		t.Errorf("run() error = %v, want terrain error", err)
	}
}
