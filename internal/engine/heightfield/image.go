package heightfield

import (
	"fmt"
	"image"
	_ "image/png" // PNG heightmaps
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP heightmaps
)

// Load decodes a grayscale heightmap image and resamples it to 1<<sizeBits
// samples per side. Color images are converted to luminance.
func Load(path string, sizeBits int) (*Heightfield, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap: %w", err)
	}
	defer f.Close()

	img, format, err := decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}

	h, err := FromImage(img, sizeBits)
	if err != nil {
		return nil, fmt.Errorf("converting %s heightmap: %w", format, err)
	}
	return h, nil
}

// decode picks the TGA decoder by extension. TGA has no magic number, so it
// is kept out of image.Decode's format sniffing.
func decode(r io.Reader, path string) (image.Image, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := tga.Decode(r)
		return img, "tga", err
	}
	return image.Decode(r)
}

// FromImage converts img into a heightfield, one gray level per height unit.
func FromImage(img image.Image, sizeBits int) (*Heightfield, error) {
	h, err := New(sizeBits)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	dst := gray
	if b.Dx() != h.Size || b.Dy() != h.Size {
		dst = image.NewGray(image.Rect(0, 0, h.Size, h.Size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	}

	for y := 0; y < h.Size; y++ {
		row := h.Row(y)
		pix := dst.Pix[y*dst.Stride:]
		for x := range row {
			row[x] = Pack(pix[x])
		}
	}
	return h, nil
}

// Image returns the heights as a grayscale image.
func (h *Heightfield) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, h.Size, h.Size))
	for y := 0; y < h.Size; y++ {
		pix := img.Pix[y*img.Stride:]
		for x, s := range h.Row(y) {
			pix[x] = Height(s)
		}
	}
	return img
}
