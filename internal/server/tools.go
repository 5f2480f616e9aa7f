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
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and metadata. Caches the image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Shape Detection
		{
			Name:        "shapes_detect",
			Description: "Run the shape detection pipeline on an image. Returns every classified shape (circle, triangle, rectangle, pentagon, star) with confidence, bounding box, center, and area.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"edge_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Sobel gradient magnitude above which a pixel counts as an edge. Default 128",
						"default":     128,
					},
					"min_contour_area": map[string]interface{}{
						"type":        "number",
						"description": "Minimum enclosed area in square pixels for a contour to be classified. Default 50",
						"default":     50,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shapes_annotate",
			Description: "Run shape detection and return the image with detections drawn on top (bounding boxes, centers, numeric labels) as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "edge_map",
			Description: "Return the binary Sobel edge map of an image as base64-encoded PNG (white = edge pixel). Useful for debugging detection tuning.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"edge_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Sobel gradient magnitude above which a pixel counts as an edge. Default 128",
						"default":     128,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
