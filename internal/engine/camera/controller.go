package camera

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/heightscape/internal/engine/input"
	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/internal/logger"
	"github.com/Faultbox/heightscape/pkg/math"
)

// Controller applies input to a camera State. It is the only writer of State
// during a session.
type Controller struct {
	State State

	// Size is the side length of the heightfield being viewed.
	Size int

	RotateSensitivity float32
	ZoomSensitivity   float32
}

// NewController creates a controller with the default state for a heightfield
// of the given size.
func NewController(size int) *Controller {
	return &Controller{
		State:             DefaultState(size),
		Size:              size,
		RotateSensitivity: DefaultRotateSensitivity,
		ZoomSensitivity:   DefaultZoomSensitivity,
	}
}

// Projection builds the projection for the current state.
func (c *Controller) Projection(width, height int) raster.Projection {
	return c.State.Projection(c.Size, width, height)
}

// HandleEvent updates the camera from one input event.
func (c *Controller) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventKeyDown:
		if e.Key == input.KeyShift {
			c.State.Panning = true
		}
	case input.EventKeyUp:
		if e.Key == input.KeyShift {
			c.State.Panning = false
		}
	case input.EventMouseDown:
		c.State.Dragging = true
	case input.EventMouseUp:
		c.State.Dragging = false
	case input.EventMouseWheel:
		c.Zoom(float32(e.Wheel))
	case input.EventMouseMove:
		if !c.State.Dragging {
			return
		}
		if c.State.Panning {
			c.Pan(float32(e.RelX), float32(e.RelY))
		} else {
			c.Rotate(float32(e.RelX), float32(e.RelY))
		}
	}
}

// Rotate orbits by a pointer motion of (dx, dy) pixels.
func (c *Controller) Rotate(dx, dy float32) {
	c.State.Pitch += dy * c.RotateSensitivity
	c.State.Yaw += dx * c.RotateSensitivity
	c.State.Clamp()
}

// Zoom scales the view exponentially by wheel steps.
func (c *Controller) Zoom(steps float32) {
	c.State.Scale *= float32(gomath.Exp(float64(steps * c.ZoomSensitivity)))
}

// Pan moves the center so the ground follows a screen drag of (dx, dy).
// It returns false and leaves the state alone when the view is edge-on.
func (c *Controller) Pan(dx, dy float32) bool {
	basis, ok := PanBasis(c.State.Projection(c.Size, 0, 0))
	if !ok {
		logger.Debug("pan skipped: singular ground basis",
			zap.Float32("yaw", c.State.Yaw),
			zap.Float32("pitch", c.State.Pitch),
		)
		return false
	}

	offset := basis.MulVec2(math.Vec2{X: dx, Y: dy})
	c.State.Center = c.State.Center.Sub(offset.Extend(0))
	return true
}
