package imaging

import (
	"fmt"
	"image"
	_ "image/gif" // Register GIF format decoder (reading only)
	"image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Brightness factors applied by the adjust_brightness tool. These are
// fixed constants, not configurable per call.
const (
	BrighterFactor = 1.5
	DarkerFactor   = 0.7
)

// DefaultQuality is used when a tool re-encodes without a caller-supplied
// quality (brightness and crop keep the file's own format at this quality).
const DefaultQuality = 95

// Backend performs the pixel-level decode/transform/encode work.
type Backend interface {
	// Decode reads and decodes the image at path.
	Decode(path string) (image.Image, error)

	// AdjustBrightness multiplies every color channel by factor,
	// clamping to the valid range.
	AdjustBrightness(img image.Image, factor float64) image.Image

	// Crop extracts rect from img. A rectangle not fully inside the
	// image bounds is an error.
	Crop(img image.Image, rect image.Rectangle) (image.Image, error)

	// Encode writes img to w in the given format at quality 1-100.
	Encode(w io.Writer, img image.Image, format Format, quality int) error
}

// StdBackend implements Backend on the bild and imaging libraries, with
// chai2010/webp for WebP output.
type StdBackend struct{}

// NewBackend returns the production backend.
func NewBackend() *StdBackend {
	return &StdBackend{}
}

func (*StdBackend) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (*StdBackend) AdjustBrightness(img image.Image, factor float64) image.Image {
	// bild expresses multiplicative brightness as a normalized change
	// around zero: c' = c * (1 + change).
	return adjust.Brightness(img, factor-1)
}

func (*StdBackend) Crop(img image.Image, rect image.Rectangle) (image.Image, error) {
	bounds := img.Bounds()
	if !rect.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return imaging.Crop(img, rect), nil
}

func (*StdBackend) Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case PNG:
		// PNG is lossless; quality selects compression effort.
		level := png.DefaultCompression
		if quality <= 50 {
			level = png.BestCompression
		}
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level))
	case WebP:
		return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
