// Package server implements the MCP (Model Context Protocol) server for image editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes in-place image
// editing capabilities through the MCP protocol. It's designed to work with
// Claude and other MCP-compatible clients, confined to files inside a single
// image root directory fixed at startup.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Editing operations (modify the file in place):
//   - adjust_brightness: Make an image brighter (x1.5) or darker (x0.7)
//   - crop_image: Crop to a pixel rectangle
//   - compress_image: Re-encode at a given quality (JPEG, PNG, WebP)
//
// Read-only information:
//   - image_info: Dimensions, format, file size, average color
//
// # Path Safety
//
// Every tool resolves its file_name argument against the image root via the
// safepath package. Names that escape the root — parent segments, absolute
// paths outside it, or symlinks pointing out — are rejected before any file
// I/O with a generic error message.
//
// # Atomic Edits
//
// Editing tools never write into the target file directly. The transformed
// image is encoded into a temporary sibling file which is then renamed over
// the original, so readers see either the old or the new content in full.
// If the transform or encode fails, the original file is untouched.
// Concurrent calls editing the same resolved path are serialized by a
// per-path lock.
//
// # Error Handling
//
// Per-tool failures are returned as tool results with isError set and a
// human-readable message; they never become JSON-RPC errors and never crash
// the process. Only malformed tools/call params produce a JSON-RPC error
// (code -32602), and unknown methods return -32601.
package server
