// Package heightfield holds the square grid of packed height samples the
// rasterizer draws from.
//
// Each sample is a 32-bit value: the top byte is the height (0..255) and the
// low three bytes are a gray shade, so a sample can be written to an
// ARGB8888 surface as-is.
package heightfield

import "fmt"

// Size limits, in bits. 1<<14 samples per side is 1 GiB of samples.
const (
	MinSizeBits     = 4
	MaxSizeBits     = 14
	DefaultSizeBits = 11
)

// HeightScaleReference is the grid size at which one height unit equals one
// grid unit. Other sizes scale relief by Size/HeightScaleReference.
const HeightScaleReference = 1024

// Heightfield is an N×N grid of packed samples stored row-major.
type Heightfield struct {
	SizeBits int
	Size     int
	Samples  []uint32
}

// New returns a zeroed heightfield of 1<<sizeBits samples per side.
func New(sizeBits int) (*Heightfield, error) {
	if sizeBits < MinSizeBits || sizeBits > MaxSizeBits {
		return nil, fmt.Errorf("size bits %d out of range [%d, %d]", sizeBits, MinSizeBits, MaxSizeBits)
	}
	size := 1 << sizeBits
	return &Heightfield{
		SizeBits: sizeBits,
		Size:     size,
		Samples:  make([]uint32, size*size),
	}, nil
}

// Pack builds a gray sample whose height and shade are both h.
func Pack(h uint8) uint32 {
	return uint32(h) * 0x01010101
}

// PackShade builds a sample with an explicit height and 24-bit shade.
func PackShade(h uint8, shade uint32) uint32 {
	return uint32(h)<<24 | shade&0x00ffffff
}

// Height extracts the height byte of a sample.
func Height(s uint32) uint8 {
	return uint8(s >> 24)
}

// Shade extracts the 24-bit shade of a sample.
func Shade(s uint32) uint32 {
	return s & 0x00ffffff
}

// At returns the sample at column x, row y.
func (h *Heightfield) At(x, y int) uint32 {
	return h.Samples[y*h.Size+x]
}

// Set stores a sample at column x, row y.
func (h *Heightfield) Set(x, y int, s uint32) {
	h.Samples[y*h.Size+x] = s
}

// Row returns row y as a slice of Size samples.
func (h *Heightfield) Row(y int) []uint32 {
	return h.Samples[y*h.Size : (y+1)*h.Size]
}

// Fill sets every sample to s.
func (h *Heightfield) Fill(s uint32) {
	for i := range h.Samples {
		h.Samples[i] = s
	}
}

// Validate checks the dimensional invariants.
func (h *Heightfield) Validate() error {
	if h == nil {
		return fmt.Errorf("nil heightfield")
	}
	if h.SizeBits < MinSizeBits || h.SizeBits > MaxSizeBits {
		return fmt.Errorf("size bits %d out of range [%d, %d]", h.SizeBits, MinSizeBits, MaxSizeBits)
	}
	if h.Size != 1<<h.SizeBits {
		return fmt.Errorf("size %d does not match size bits %d", h.Size, h.SizeBits)
	}
	if len(h.Samples) != h.Size*h.Size {
		return fmt.Errorf("have %d samples, want %d", len(h.Samples), h.Size*h.Size)
	}
	return nil
}
