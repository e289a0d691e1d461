package imaging

import (
	"fmt"
	"image"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Info contains metadata about an image file, reported by the read-only
// image_info tool.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the writable format implied by the file extension:
	// "jpeg", "png", "webp", or "unknown" for anything else.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// AverageColor is the mean color over all pixels as "#rrggbb".
	AverageColor string `json:"average_color"`

	// AverageHSL is the same color in HSL form, e.g. "hsl(120, 50%, 40%)".
	AverageHSL string `json:"average_hsl"`
}

// Inspect decodes the image at path and reports its dimensions, format,
// file size, and average color. The file is never modified.
func Inspect(b Backend, path string) (*Info, error) {
	img, err := b.Decode(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	formatName := "unknown"
	if format, err := FormatFromPath(path); err == nil {
		formatName = string(format)
	}

	avg := averageColor(img)
	h, s, l := avg.Hsl()

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatName,
		FileSizeBytes: stat.Size(),
		AverageColor:  avg.Hex(),
		AverageHSL:    fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100),
	}, nil
}

// averageColor computes the mean RGB value over all pixels.
func averageColor(img image.Image) colorful.Color {
	bounds := img.Bounds()
	n := float64(bounds.Dx() * bounds.Dy())
	if n == 0 {
		return colorful.Color{}
	}

	var r, g, b float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += float64(cr) / 65535
			g += float64(cg) / 65535
			b += float64(cb) / 65535
		}
	}
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}
