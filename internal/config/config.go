// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/engine/heightfield"
	"github.com/Faultbox/heightscape/internal/engine/raster"
)

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Camera     CameraConfig     `yaml:"camera"`
	Render     RenderConfig     `yaml:"render"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// TerrainConfig selects where the heightfield comes from. A non-empty
// Heightmap is loaded from disk; otherwise terrain is generated.
type TerrainConfig struct {
	SizeBits    int     `yaml:"size_bits"`
	Heightmap   string  `yaml:"heightmap"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
	Offset      float64 `yaml:"offset"`
}

// CameraConfig holds the initial view and interaction rates.
// A zero Scale selects 1000/size.
type CameraConfig struct {
	Yaw               float32 `yaml:"yaw"`
	Pitch             float32 `yaml:"pitch"`
	Scale             float32 `yaml:"scale"`
	RotateSensitivity float32 `yaml:"rotate_sensitivity"`
	ZoomSensitivity   float32 `yaml:"zoom_sensitivity"`
}

// RenderConfig holds rasterizer settings.
type RenderConfig struct {
	Background uint32 `yaml:"background"`
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or webp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	gen := heightfield.DefaultGenParams()
	return &Config{
		Window: WindowConfig{
			Title:      "heightmap rendering test",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			ShowFPS:    true,
		},
		Terrain: TerrainConfig{
			SizeBits:    gen.SizeBits,
			Seed:        gen.Seed,
			Octaves:     gen.Octaves,
			Persistence: gen.Persistence,
			Lacunarity:  gen.Lacunarity,
			Frequency:   gen.Frequency,
			Amplitude:   gen.Amplitude,
			Offset:      gen.Offset,
		},
		Camera: CameraConfig{
			Yaw:               0.4,
			Pitch:             0.4,
			RotateSensitivity: camera.DefaultRotateSensitivity,
			ZoomSensitivity:   camera.DefaultZoomSensitivity,
		},
		Render: RenderConfig{
			Background: raster.Background,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot produce a working viewer.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Terrain.SizeBits < heightfield.MinSizeBits || c.Terrain.SizeBits > heightfield.MaxSizeBits {
		return fmt.Errorf("terrain.size_bits %d out of range [%d, %d]",
			c.Terrain.SizeBits, heightfield.MinSizeBits, heightfield.MaxSizeBits)
	}
	if c.Terrain.Octaves < 1 {
		return fmt.Errorf("terrain.octaves must be at least 1, got %d", c.Terrain.Octaves)
	}
	if c.Terrain.Persistence <= 0 {
		return fmt.Errorf("terrain.persistence must be positive, got %v", c.Terrain.Persistence)
	}
	if c.Camera.Scale < 0 {
		return fmt.Errorf("camera.scale must not be negative, got %v", c.Camera.Scale)
	}
	switch c.Screenshot.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("screenshot.format %q must be png or webp", c.Screenshot.Format)
	}
	return nil
}

// GenParams returns the generator parameters for the terrain section.
func (t TerrainConfig) GenParams() heightfield.GenParams {
	return heightfield.GenParams{
		SizeBits:    t.SizeBits,
		Seed:        t.Seed,
		Octaves:     t.Octaves,
		Persistence: t.Persistence,
		Lacunarity:  t.Lacunarity,
		Frequency:   t.Frequency,
		Amplitude:   t.Amplitude,
		Offset:      t.Offset,
	}
}

// Apply sets the initial view and rates on a camera controller.
func (c CameraConfig) Apply(ctl *camera.Controller) {
	ctl.State.Yaw = c.Yaw
	ctl.State.Pitch = c.Pitch
	if c.Scale > 0 {
		ctl.State.Scale = c.Scale
	}
	ctl.State.Clamp()
	if c.RotateSensitivity != 0 {
		ctl.RotateSensitivity = c.RotateSensitivity
	}
	if c.ZoomSensitivity != 0 {
		ctl.ZoomSensitivity = c.ZoomSensitivity
	}
}

// Build produces the heightfield described by the terrain section.
func (t TerrainConfig) Build() (*heightfield.Heightfield, error) {
	if t.Heightmap != "" {
		hf, err := heightfield.Load(t.Heightmap, t.SizeBits)
		if err != nil {
			return nil, fmt.Errorf("load heightmap: %w", err)
		}
		return hf, nil
	}
	hf, err := heightfield.Generate(t.GenParams())
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	return hf, nil
}

// Capture copies the controller's orientation and zoom into c, the inverse of
// Apply. Rates are left alone.
func (c *CameraConfig) Capture(ctl *camera.Controller) {
	c.Yaw = ctl.State.Yaw
	c.Pitch = ctl.State.Pitch
	c.Scale = ctl.State.Scale
}
