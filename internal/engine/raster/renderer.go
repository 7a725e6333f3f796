// Package raster draws a heightfield into a pixel buffer without a depth
// buffer.
//
// Heightfield rows are walked nearest first. Every screen column keeps a
// horizon, the lowest row not yet painted, which only ever moves up. A row can
// paint a column only between the horizon and its own projected elevation, so
// nearer terrain hides farther terrain with no depth test and every pixel is
// written at most once.
package raster

import (
	"encoding/binary"
	"fmt"

	"github.com/Faultbox/heightscape/internal/engine/heightfield"
)

// Background is the default color of pixels no terrain projects onto.
const Background uint32 = 0xff2f2f2f

const alphaMask uint32 = 0xff000000

// Fixed-point scales. Axes[0] uses 15 fractional bits and is multiplied by
// odd/even half-steps so cell centers and edges share one integer multiply.
const (
	fixShift = 16
	fix16    = 1 << fixShift
	fix15    = 1 << 15
)

// Renderer holds scratch storage reused across frames of the same size.
type Renderer struct {
	Background uint32

	width, height int

	// columns is column-major: pixel (x, y) lives at x*height + y.
	columns []uint32
	horizon []int

	rowX []int
	rowY []int

	painted int
}

// NewRenderer returns a renderer that clears to background.
func NewRenderer(background uint32) *Renderer {
	return &Renderer{Background: background}
}

// Painted returns how many pixels terrain covered in the last Render.
func (r *Renderer) Painted() int {
	return r.painted
}

func (r *Renderer) resize(width, height, size int) {
	if width != r.width || height != r.height {
		r.width, r.height = width, height
		r.columns = make([]uint32, width*height)
		r.horizon = make([]int, width)
	}
	if len(r.rowX) != size {
		r.rowX = make([]int, size)
		r.rowY = make([]int, size)
	}
}

// Render draws hf through p into dst, writing every pixel of dst exactly once.
// It panics if hf or dst are malformed; those are caller bugs.
func (r *Renderer) Render(hf *heightfield.Heightfield, p Projection, dst *Surface) {
	if err := hf.Validate(); err != nil {
		panic(fmt.Sprintf("raster: invalid heightfield: %v", err))
	}
	if err := dst.Validate(); err != nil {
		panic(fmt.Sprintf("raster: invalid surface: %v", err))
	}

	r.resize(dst.Width, dst.Height, hf.Size)
	r.clear()

	ax := int(p.Axes[0].X * fix15)
	ay := int(p.Axes[0].Y * fix15)
	hz := int(p.Axes[2].Y * fix16)
	maxX := r.width << fixShift

	for ty := 0; ty < hf.Size; ty++ {
		row := hf.Row(ty)
		origin := p.Origin.Add(p.Axes[1].Scale(float32(ty) + 0.5))
		ox := int(origin.X * fix16)
		oy := int(origin.Y * fix16)

		for tx, s := range row {
			// Elevated cell center gives the top of the cell on screen; the
			// unelevated left edge gives its horizontal boundary.
			cy := oy + ay*(2*tx+1) + int(heightfield.Height(s))*hz
			ex := ox + ax*(2*tx)

			if cy < 0 {
				cy = 0
			}
			if ex < 0 {
				ex = 0
			}
			if ex > maxX {
				ex = maxX
			}
			r.rowX[tx] = ex >> fixShift
			r.rowY[tx] = cy >> fixShift
		}

		sx := clampCursor(origin.X, r.width)
		if ax > 0 {
			for tx, s := range row {
				for ; sx < r.rowX[tx]; sx++ {
					r.paint(sx, r.rowY[tx], s)
				}
			}
		} else {
			for tx, s := range row {
				for sx > r.rowX[tx] {
					sx--
					r.paint(sx, r.rowY[tx], s)
				}
			}
		}
	}

	r.transpose(dst)
}

func (r *Renderer) clear() {
	for i := range r.columns {
		r.columns[i] = r.Background
	}
	for i := range r.horizon {
		r.horizon[i] = r.height
	}
	r.painted = 0
}

// paint fills column x upward from its horizon to screen row top.
func (r *Renderer) paint(x, top int, s uint32) {
	h := r.horizon[x]
	if h <= top {
		return
	}
	col := r.columns[x*r.height : (x+1)*r.height]
	r.painted += h - top
	for h > top {
		h--
		col[h] = s
	}
	r.horizon[x] = h
}

func (r *Renderer) transpose(dst *Surface) {
	var alpha uint32
	if dst.Opaque {
		alpha = alphaMask
	}
	for y := 0; y < r.height; y++ {
		line := dst.Pix[y*dst.Pitch : y*dst.Pitch+r.width*4]
		for x := 0; x < r.width; x++ {
			binary.NativeEndian.PutUint32(line[x*4:], r.columns[x*r.height+y]|alpha)
		}
	}
}

func clampCursor(x float32, width int) int {
	if !(x > 0) {
		return 0
	}
	if x > float32(width) {
		return width
	}
	return int(x)
}
