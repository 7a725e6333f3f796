package raster

import (
	"encoding/binary"
	"fmt"
	"image"
)

// Surface is a destination pixel buffer of packed 0xAARRGGBB values stored in
// native byte order, matching SDL's ARGB8888 format. Rows are Pitch bytes
// apart; Pitch may exceed Width*4.
type Surface struct {
	Pix    []byte
	Width  int
	Height int
	Pitch  int

	// Opaque marks a format with a real alpha channel. Render forces alpha
	// to 0xff on every pixel when set.
	Opaque bool
}

// NewSurface allocates a tightly packed opaque surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
		Pitch:  width * 4,
		Opaque: true,
	}
}

// Validate checks that the dimensions, pitch and backing slice agree.
func (s *Surface) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("surface size %dx%d is not positive", s.Width, s.Height)
	}
	if s.Pitch < s.Width*4 {
		return fmt.Errorf("pitch %d smaller than row size %d", s.Pitch, s.Width*4)
	}
	if need := (s.Height-1)*s.Pitch + s.Width*4; len(s.Pix) < need {
		return fmt.Errorf("pixel buffer has %d bytes, need %d", len(s.Pix), need)
	}
	return nil
}

func (s *Surface) offset(x, y int) int {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d surface", x, y, s.Width, s.Height))
	}
	return y*s.Pitch + x*4
}

// Set writes the packed color c at (x, y).
func (s *Surface) Set(x, y int, c uint32) {
	binary.NativeEndian.PutUint32(s.Pix[s.offset(x, y):], c)
}

// At reads the packed color at (x, y).
func (s *Surface) At(x, y int) uint32 {
	return binary.NativeEndian.Uint32(s.Pix[s.offset(x, y):])
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c uint32) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			s.Set(x, y, c)
		}
	}
}

// RGBA converts the surface to an image for encoding. Alpha is taken from the
// pixel when Opaque is set and forced to 0xff otherwise.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < s.Width; x++ {
			c := s.At(x, y)
			a := uint8(c >> 24)
			if !s.Opaque {
				a = 0xff
			}
			dst[x*4+0] = uint8(c >> 16)
			dst[x*4+1] = uint8(c >> 8)
			dst[x*4+2] = uint8(c)
			dst[x*4+3] = a
		}
	}
	return img
}
