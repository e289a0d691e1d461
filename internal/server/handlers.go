package server

import (
	"encoding/json"
	"fmt"
	"image"
	"io"

	"github.com/ironsheep/image-edit-mcp/internal/atomicfile"
	"github.com/ironsheep/image-edit-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "adjust_brightness", "crop_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool outcome in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<message>"}],
//	  "isError": false
//	}
//
// Tool failures — unsafe paths, unsupported formats, backend errors — are
// reported in the same shape with isError set, never as JSON-RPC errors, so
// a failing edit can never take the serving process down. Only malformed
// params produce a JSON-RPC error response.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	message, err := s.executeTool(params.Name, params.Arguments)
	isError := false
	if err != nil {
		message = err.Error()
		isError = true
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": message,
				},
			},
			"isError": isError,
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each editing handler follows the same sequence:
//  1. Unmarshal arguments and validate numeric/enum constraints
//  2. Resolve the file name against the image root
//  3. Decode, transform via the backend
//  4. Re-encode through an atomic replace of the original file
//  5. Return a human-readable message or error
func (s *Server) executeTool(name string, args json.RawMessage) (string, error) {
	switch name {
	// Editing Operations
	case "adjust_brightness":
		return s.handleAdjustBrightness(args)
	case "crop_image":
		return s.handleCropImage(args)
	case "compress_image":
		return s.handleCompressImage(args)

	// Read-Only Information
	case "image_info":
		return s.handleImageInfo(args)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// === Editing Operation Handlers ===

type adjustBrightnessArgs struct {
	FileName string `json:"file_name"`
	Level    string `json:"level"`
}

func (s *Server) handleAdjustBrightness(args json.RawMessage) (string, error) {
	var a adjustBrightnessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	var factor float64
	switch a.Level {
	case "brighter":
		factor = imaging.BrighterFactor
	case "darker":
		factor = imaging.DarkerFactor
	default:
		return "", fmt.Errorf("invalid level %q: must be \"brighter\" or \"darker\"", a.Level)
	}

	path, err := s.root.Resolve(a.FileName)
	if err != nil {
		return "", err
	}
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(path)
	defer unlock()

	img, err := s.backend.Decode(path)
	if err != nil {
		return "", err
	}
	adjusted := s.backend.AdjustBrightness(img, factor)

	err = atomicfile.Replace(path, func(w io.Writer) error {
		return s.backend.Encode(w, adjusted, format, imaging.DefaultQuality)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Adjusted brightness of %s (%s)", a.FileName, a.Level), nil
}

type cropImageArgs struct {
	FileName string `json:"file_name"`
	Left     int    `json:"left"`
	Top      int    `json:"top"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func (s *Server) handleCropImage(args json.RawMessage) (string, error) {
	var a cropImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	// Dimensions are validated before any path or file work so zero or
	// negative sizes never reach the backend.
	if a.Width <= 0 || a.Height <= 0 {
		return "", fmt.Errorf("crop dimensions must be positive, got %dx%d", a.Width, a.Height)
	}

	path, err := s.root.Resolve(a.FileName)
	if err != nil {
		return "", err
	}
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(path)
	defer unlock()

	img, err := s.backend.Decode(path)
	if err != nil {
		return "", err
	}
	rect := image.Rect(a.Left, a.Top, a.Left+a.Width, a.Top+a.Height)
	cropped, err := s.backend.Crop(img, rect)
	if err != nil {
		return "", err
	}

	err = atomicfile.Replace(path, func(w io.Writer) error {
		return s.backend.Encode(w, cropped, format, imaging.DefaultQuality)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Cropped %s to %dx%d", a.FileName, a.Width, a.Height), nil
}

type compressImageArgs struct {
	FileName string `json:"file_name"`
	Quality  int    `json:"quality"`
}

func (s *Server) handleCompressImage(args json.RawMessage) (string, error) {
	var a compressImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	if a.Quality < 1 || a.Quality > 100 {
		return "", fmt.Errorf("quality must be between 1 and 100, got %d", a.Quality)
	}

	path, err := s.root.Resolve(a.FileName)
	if err != nil {
		return "", err
	}
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(path)
	defer unlock()

	img, err := s.backend.Decode(path)
	if err != nil {
		return "", err
	}

	err = atomicfile.Replace(path, func(w io.Writer) error {
		return s.backend.Encode(w, img, format, a.Quality)
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Compressed %s at quality %d", a.FileName, a.Quality), nil
}

// === Read-Only Information Handlers ===

type imageInfoArgs struct {
	FileName string `json:"file_name"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (string, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", err
	}

	path, err := s.root.Resolve(a.FileName)
	if err != nil {
		return "", err
	}

	// No lock: this never writes, and the atomic replace discipline
	// guarantees it can never observe a half-written file.
	info, err := imaging.Inspect(s.backend, path)
	if err != nil {
		return "", err
	}

	return marshalJSON(info), nil
}

// marshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func marshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
