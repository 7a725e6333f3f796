package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/heightscape/internal/config"
)

func TestRunWritesFrameAndHeightmap(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "frame.png")
	dump := filepath.Join(dir, "height.tga")

	*flagOut = out
	*flagDumpHeightmap = dump
	defer func() {
		*flagOut = "frame.png"
		*flagDumpHeightmap = ""
	}()

	cfg := config.Default()
	cfg.Terrain.SizeBits = 5
	cfg.Window.Width = 64
	cfg.Window.Height = 48

	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame bounds = %v, want 64x48", b)
	}

	if info, err := os.Stat(dump); err != nil || info.Size() == 0 {
		t.Errorf("heightmap dump missing: %v", err)
	}
}

func TestRunReturnsTerrainError(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.SizeBits = 5
	cfg.Terrain.Heightmap = filepath.Join(t.TempDir(), "missing.png")

	if err := run(cfg); err == nil {
		t.Error("run() = nil, want terrain error")
	}
}
