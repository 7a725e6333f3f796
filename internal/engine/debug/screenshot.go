// Package debug provides frame timing and screenshot utilities.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/Faultbox/heightscape/internal/engine/raster"
)

// ScreenshotCapture writes frames to timestamped image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler. format is "png" or "webp".
func NewScreenshotCapture(outputDir, prefix, format string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// CaptureSurface saves a rendered surface and returns the file written.
func (sc *ScreenshotCapture) CaptureSurface(s *raster.Surface) (string, error) {
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("capturing surface: %w", err)
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	if err := WriteImage(filename, s.RGBA()); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// WriteImage encodes img to path, choosing PNG, WebP or TGA from the
// extension.
func WriteImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".webp":
		encode = func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}
	case ".tga":
		encode = tga.Encode
	default:
		return fmt.Errorf("unsupported image extension %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
