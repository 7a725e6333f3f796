// Package camera holds the orbit camera state and turns it into the screen
// projection consumed by the rasterizer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/heightscape/internal/engine/heightfield"
	"github.com/Faultbox/heightscape/internal/engine/raster"
	"github.com/Faultbox/heightscape/pkg/math"
)

// Angle limits in radians.
const (
	YawLimit   = 0.4 * gomath.Pi
	PitchLimit = 0.5 * gomath.Pi
)

// Default interaction rates.
const (
	DefaultRotateSensitivity = 0.003 // radians per pixel of drag
	DefaultZoomSensitivity   = 0.01  // log-scale per wheel step
)

// State is the orbit camera: the point it looks at, its orientation and its
// zoom in screen pixels per grid unit.
type State struct {
	Center math.Vec3
	Yaw    float32
	Pitch  float32
	Scale  float32

	// Dragging is set while a mouse button is held. Panning is set while
	// shift is held and turns drags into pans.
	Dragging bool
	Panning  bool
}

// DefaultState frames a heightfield of the given size from above its middle.
func DefaultState(size int) State {
	mid := float32(size / 2)
	return State{
		Center: math.Vec3{X: mid, Y: mid, Z: 128},
		Yaw:    0.4,
		Pitch:  0.4,
		Scale:  1000 / float32(size),
	}
}

// Clamp limits yaw and pitch to their allowed ranges.
func (s *State) Clamp() {
	s.Yaw = clampf(s.Yaw, -YawLimit, YawLimit)
	s.Pitch = clampf(s.Pitch, -PitchLimit, PitchLimit)
}

// Transform returns the world-to-screen matrix for a grid of the given size.
// Height is compressed by size/1024 so relief looks the same at any grid
// resolution.
func (s State) Transform(size int) math.Mat4 {
	relief := float32(size) / heightfield.HeightScaleReference
	return math.UniformScale(s.Scale).
		Mul(math.RotateX(s.Pitch + gomath.Pi/2)).
		Mul(math.RotateZ(s.Yaw)).
		Mul(math.Scale(1, 1, relief)).
		Mul(math.Translate(s.Center.Neg()))
}

// Projection builds the rasterizer projection for a width×height viewport.
// It only reads s, so equal inputs give bit-identical results.
func (s State) Projection(size, width, height int) raster.Projection {
	m := s.Transform(size)
	half := math.Vec2{X: float32(width), Y: float32(height)}.Scale(0.5)

	return raster.Projection{
		Origin: half.Add(m.TransformPoint(math.Vec3{}).XY()),
		Axes: [3]math.Vec2{
			m.TransformVector(math.UnitX).XY(),
			m.TransformVector(math.UnitY).XY(),
			m.TransformVector(math.UnitZ).XY(),
		},
	}
}

// singularLimit is the smallest determinant, relative to the squared length of
// the longer projected grid axis, for which a pan is still resolved.
const singularLimit = 1e-6

// PanBasis maps a screen displacement back to a grid displacement. ok is false
// when the ground plane is seen edge-on (pitch zero) and the grid axes have
// collapsed onto one screen line.
func PanBasis(p raster.Projection) (m math.Mat2, ok bool) {
	a, b := p.Axes[0], p.Axes[1]
	basis := math.Mat2FromCols(a, b)
	det := basis.Det()
	if det < 0 {
		det = -det
	}
	unit := max(a.Length(), b.Length())
	if det <= singularLimit*unit*unit {
		return math.Mat2{}, false
	}
	return basis.Inverse()
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
