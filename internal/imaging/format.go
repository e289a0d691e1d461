package imaging

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image encoding supported for writing.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WebP Format = "webp"
)

// ErrUnsupportedFormat marks a file extension outside the writable set.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromPath maps a file extension to its Format. Matching is
// case-insensitive. Any extension outside .jpg/.jpeg/.png/.webp returns an
// error naming the offending extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
