// Package imaging provides the pixel-level backend for the image editing
// tools.
//
// The Backend interface covers the full decode/transform/encode cycle:
// reading an image from disk, adjusting brightness, extracting a region,
// and re-encoding at a given quality. It is an interface so the codec
// libraries can be swapped without touching path safety, atomic writes, or
// handler logic; StdBackend is the production implementation built on the
// bild and imaging libraries.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Crop rectangles use the
// standard image.Rectangle convention: Min inclusive, Max exclusive.
//
// # Formats
//
// Writable formats are JPEG, PNG, and WebP, selected by file extension via
// FormatFromPath. GIF is registered for decoding only; a GIF (or any other
// extension) can never be written, and FormatFromPath reports it as
// unsupported. Quality semantics are format-specific: JPEG and WebP treat
// 1-100 as lossy quality, PNG is lossless and maps quality to compression
// effort.
//
// # Error Handling
//
// Backend errors (unreadable files, undecodable data, out-of-bounds crop
// rectangles, encoder failures) are returned verbatim so callers can
// surface them to the user unchanged.
package imaging
