package heightfield

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// GenParams controls the fractal noise generator.
type GenParams struct {
	SizeBits    int
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Frequency   float64 // noise periods across the whole grid
	Amplitude   float64 // height units per unit of noise in [-1, 1]
	Offset      float64 // height at noise 0
}

// DefaultGenParams returns the generator defaults.
func DefaultGenParams() GenParams {
	return GenParams{
		SizeBits:    DefaultSizeBits,
		Seed:        0,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2,
		Frequency:   2,
		Amplitude:   160,
		Offset:      128,
	}
}

// Generate builds a heightfield from fractal Perlin noise. The result is
// deterministic for a given set of parameters.
func Generate(p GenParams) (*Heightfield, error) {
	if p.Octaves < 1 {
		return nil, fmt.Errorf("octaves must be at least 1, got %d", p.Octaves)
	}
	if p.Persistence <= 0 {
		return nil, fmt.Errorf("persistence must be positive, got %v", p.Persistence)
	}

	h, err := New(p.SizeBits)
	if err != nil {
		return nil, err
	}

	// go-perlin divides each octave by alpha and multiplies the frequency by
	// beta, so alpha is the reciprocal of the persistence.
	noise := perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed)

	inv := p.Frequency / float64(h.Size)
	for y := 0; y < h.Size; y++ {
		row := h.Row(y)
		for x := range row {
			n := noise.Noise2D(float64(x)*inv, float64(y)*inv)
			row[x] = Pack(clampHeight(n*p.Amplitude + p.Offset))
		}
	}
	return h, nil
}

func clampHeight(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
