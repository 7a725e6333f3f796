// Package termview renders the heightfield into a terminal. Each cell shows
// two vertically stacked pixels using an upper half block.
package termview

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/engine/heightfield"
	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/internal/logger"
)

// ReferenceWidth is the surface width the camera scale and sensitivities are
// tuned for. Terminal surfaces are much narrower, so both are rescaled.
const ReferenceWidth = 1280

const (
	halfBlock  = '▀'
	keyRotate  = 20 // reference pixels per arrow press
	keyPan     = 24 // reference pixels per w/a/s/d press
	keyZoom    = 10 // wheel steps per +/- press
	wheelSteps = 10
)

// View is a terminal session over one heightfield.
type View struct {
	screen   tcell.Screen
	terrain  *heightfield.Heightfield
	camera   *camera.Controller
	renderer *raster.Renderer
	surface  *raster.Surface

	dragging     bool
	lastX, lastY int
}

// New creates a view drawing to screen. The screen must already be
// initialized.
func New(screen tcell.Screen, hf *heightfield.Heightfield, ctl *camera.Controller, background uint32) *View {
	return &View{
		screen:   screen,
		terrain:  hf,
		camera:   ctl,
		renderer: raster.NewRenderer(background),
	}
}

// Run draws and handles events until the user quits.
func (v *View) Run() error {
	for {
		v.Draw()

		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.Handle(ev) {
			return nil
		}
	}
}

// Surface returns the surface of the last drawn frame.
func (v *View) Surface() *raster.Surface {
	return v.surface
}

// Draw renders one frame and shows it.
func (v *View) Draw() {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	if v.surface == nil || v.surface.Width != cols || v.surface.Height != rows*2 {
		v.surface = raster.NewSurface(cols, rows*2)
		logger.Debug("terminal surface resized", zap.Int("cols", cols), zap.Int("rows", rows))
	}

	state := v.camera.State
	state.Scale *= float32(cols) / ReferenceWidth
	v.renderer.Render(v.terrain, state.Projection(v.camera.Size, cols, rows*2), v.surface)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := CellStyle(v.surface.At(x, 2*y), v.surface.At(x, 2*y+1))
			v.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	v.screen.Show()
}

// Handle applies one event and reports whether the view should exit.
func (v *View) Handle(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(e)
	case *tcell.EventMouse:
		v.handleMouse(e)
	}
	return false
}

func (v *View) handleKey(e *tcell.EventKey) bool {
	unit := v.unit()
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.camera.Rotate(-keyRotate, 0)
	case tcell.KeyRight:
		v.camera.Rotate(keyRotate, 0)
	case tcell.KeyUp:
		v.camera.Rotate(0, -keyRotate)
	case tcell.KeyDown:
		v.camera.Rotate(0, keyRotate)
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return true
		case 'w':
			v.camera.Pan(0, -keyPan*unit)
		case 's':
			v.camera.Pan(0, keyPan*unit)
		case 'a':
			v.camera.Pan(-keyPan*unit, 0)
		case 'd':
			v.camera.Pan(keyPan*unit, 0)
		case '+', '=':
			v.camera.Zoom(keyZoom)
		case '-', '_':
			v.camera.Zoom(-keyZoom)
		}
	}
	return false
}

func (v *View) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	buttons := e.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		v.camera.Zoom(wheelSteps)
		return
	case buttons&tcell.WheelDown != 0:
		v.camera.Zoom(-wheelSteps)
		return
	}

	if buttons&tcell.Button1 == 0 {
		v.dragging = false
		return
	}
	if !v.dragging {
		v.dragging = true
		v.lastX, v.lastY = x, y
		return
	}

	// Cells are one pixel wide and two pixels tall.
	unit := v.unit()
	dx := float32(x-v.lastX) * unit
	dy := float32(2*(y-v.lastY)) * unit
	v.lastX, v.lastY = x, y

	if e.Modifiers()&tcell.ModShift != 0 {
		v.camera.Pan(dx, dy)
	} else {
		v.camera.Rotate(dx, dy)
	}
}

// unit converts terminal pixels to reference pixels.
func (v *View) unit() float32 {
	cols, _ := v.screen.Size()
	if cols <= 0 {
		return 1
	}
	return ReferenceWidth / float32(cols)
}

// CellStyle colors a half block cell: the foreground is the top pixel and
// the background the bottom one.
func CellStyle(top, bottom uint32) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(top)).Background(Color(bottom))
}

// Color converts a packed 0xAARRGGBB pixel to a terminal color.
func Color(c uint32) tcell.Color {
	return tcell.NewRGBColor(int32(c>>16&0xff), int32(c>>8&0xff), int32(c&0xff))
}
