package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Editing Operations
		{
			Name:        "adjust_brightness",
			Description: "Make an image brighter or darker. The file is re-encoded in its own format and replaced in place.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": map[string]interface{}{
						"type":        "string",
						"description": "Name of the image file, relative to the image root directory",
					},
					"level": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"brighter", "darker"},
						"description": "Direction of the adjustment",
					},
				},
				"required": []string{"file_name", "level"},
			},
		},
		{
			Name:        "crop_image",
			Description: "Crop an image to the given pixel rectangle and replace the file in place. Coordinates are 0-based from the top-left corner.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": map[string]interface{}{
						"type":        "string",
						"description": "Name of the image file, relative to the image root directory",
					},
					"left": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate of the crop rectangle",
					},
					"top": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate of the crop rectangle",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"description": "Width of the crop rectangle in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"description": "Height of the crop rectangle in pixels",
					},
				},
				"required": []string{"file_name", "left", "top", "width", "height"},
			},
		},
		{
			Name:        "compress_image",
			Description: "Re-encode an image in its existing format (JPEG, PNG or WebP by extension) at the given quality and replace the file in place.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": map[string]interface{}{
						"type":        "string",
						"description": "Name of the image file, relative to the image root directory",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"minimum":     1,
						"maximum":     100,
						"description": "Target quality. Meaning is format-specific: lossy quality for JPEG/WebP, compression effort for PNG",
					},
				},
				"required": []string{"file_name", "quality"},
			},
		},

		// Read-Only Information
		{
			Name:        "image_info",
			Description: "Get an image's dimensions, format, file size and average color without modifying it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"file_name": map[string]interface{}{
						"type":        "string",
						"description": "Name of the image file, relative to the image root directory",
					},
				},
				"required": []string{"file_name"},
			},
		},
	}
}
