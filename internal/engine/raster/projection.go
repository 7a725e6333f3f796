package raster

import "github.com/Faultbox/heightscape/pkg/math"

// Projection is the per-frame affine mapping from heightfield coordinates to
// screen pixels. Origin is where the heightfield origin lands on screen, and
// Axes[i] is the screen displacement of one unit step along world axis i.
// Only Axes[2].Y is used by the rasterizer: it scales height into screen Y.
type Projection struct {
	Origin math.Vec2
	Axes   [3]math.Vec2
}

// Project maps a heightfield point (column, row, height) to screen space.
func (p Projection) Project(x, y, z float32) math.Vec2 {
	return p.Origin.
		Add(p.Axes[0].Scale(x)).
		Add(p.Axes[1].Scale(y)).
		Add(p.Axes[2].Scale(z))
}
