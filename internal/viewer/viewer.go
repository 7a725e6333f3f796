// Package viewer implements the interactive window frame loop.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/config"
	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/engine/debug"
	"github.com/Faultbox/heightscape/internal/engine/heightfield"
	"github.com/Faultbox/heightscape/internal/engine/input"
	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/internal/engine/window"
	"github.com/Faultbox/heightscape/internal/logger"
)

// Viewer owns the window, the camera and the renderer for one session.
type Viewer struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	terrain  *heightfield.Heightfield
	camera   *camera.Controller
	renderer *raster.Renderer
	events   *input.Queue
	fps      *debug.FPSCounter
	shots    *debug.ScreenshotCapture
}

// New opens the window and prepares a session over hf.
func New(cfg *config.Config, hf *heightfield.Heightfield) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("terrain_size", hf.Size),
	)

	v := &Viewer{
		cfg:      cfg,
		terrain:  hf,
		camera:   camera.NewController(hf.Size),
		renderer: raster.NewRenderer(cfg.Render.Background),
		events:   input.NewQueue(),
		fps:      debug.NewFPSCounter(),
		shots:    debug.NewScreenshotCapture(cfg.Screenshot.Dir, "heightscape", cfg.Screenshot.Format),
	}
	cfg.Camera.Apply(v.camera)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	return v, nil
}

// Run drives frames until the window is closed or Escape is pressed.
func (v *Viewer) Run() error {
	v.running = true
	logger.Info("starting frame loop")

	for v.running {
		// 1. Process input
		v.events.Reset()
		window.PollEvents(v.events)
		if v.events.Quit() {
			v.running = false
			break
		}

		capture, err := v.dispatch(v.events.Events())
		if err != nil {
			return err
		}

		// 2. Render
		err = v.window.Frame(func(s *raster.Surface) {
			v.renderer.Render(v.terrain, v.camera.Projection(s.Width, s.Height), s)
			if capture {
				v.screenshot(s)
			}
		})
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 3. Present
		if err := v.window.Present(); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		// 4. Frame rate
		if v.fps.Log(1) {
			rate := v.fps.Rate()
			logger.Debug("frame rate",
				zap.Float64("fps", rate),
				zap.Int("painted", v.renderer.Painted()),
			)
			if v.cfg.Window.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("%s [%.2f fps]", v.cfg.Window.Title, rate))
			}
		}
	}

	return nil
}

// dispatch routes one frame of events and reports whether a screenshot was
// requested.
func (v *Viewer) dispatch(events []input.Event) (bool, error) {
	for _, e := range events {
		if e.Type == input.EventWindowResize {
			if err := v.window.Resize(e.Width, e.Height); err != nil {
				return false, err
			}
			continue
		}
		v.camera.HandleEvent(e)
	}

	if v.events.KeyPressed(input.KeySaveView) {
		v.saveView()
	}
	return v.events.KeyPressed(input.KeyScreenshot), nil
}

func (v *Viewer) saveView() {
	path, err := v.cfg.SaveView(v.camera)
	if err != nil {
		logger.Error("saving view failed", zap.Error(err))
		return
	}
	logger.Info("view saved", zap.String("path", path))
}

func (v *Viewer) screenshot(s *raster.Surface) {
	path, err := v.shots.CaptureSurface(s)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.window != nil {
		v.window.Close()
	}
}
