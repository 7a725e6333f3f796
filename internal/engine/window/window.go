// Package window handles the SDL2 window and the software frame surface the
// rasterizer draws into.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Window wraps an SDL2 window and an ARGB8888 frame surface of the same size.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	frame     *sdl.Surface
}

// New creates a new window and its frame surface.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	width, height := w.GetSize()
	if err := w.Resize(width, height); err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, err
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
	)

	return w, nil
}

// Resize replaces the frame surface with one of the given size.
func (w *Window) Resize(width, height int) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	frame, err := sdl.CreateRGBSurfaceWithFormat(0, int32(width), int32(height), 32,
		uint32(sdl.PIXELFORMAT_ARGB8888))
	if err != nil {
		return fmt.Errorf("SDL_CreateRGBSurfaceWithFormat %dx%d failed: %w", width, height, err)
	}
	if w.frame != nil {
		w.frame.Free()
	}
	w.frame = frame

	logger.Debug("frame surface resized", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// Frame locks the frame surface and hands it to draw as a raster.Surface.
// The surface is only valid for the duration of the call.
func (w *Window) Frame(draw func(*raster.Surface)) error {
	if w.frame.MustLock() {
		if err := w.frame.Lock(); err != nil {
			return fmt.Errorf("lock frame surface: %w", err)
		}
		defer w.frame.Unlock()
	}

	draw(&raster.Surface{
		Pix:    w.frame.Pixels(),
		Width:  int(w.frame.W),
		Height: int(w.frame.H),
		Pitch:  int(w.frame.Pitch),
		Opaque: true,
	})
	return nil
}

// Present copies the frame surface to the window.
func (w *Window) Present() error {
	dst, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("get window surface: %w", err)
	}
	if err := w.frame.Blit(nil, dst, nil); err != nil {
		return fmt.Errorf("blit frame: %w", err)
	}
	return w.sdlWindow.UpdateSurface()
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.frame != nil {
		w.frame.Free()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
