package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "shapes_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Shape Detection
	case "shapes_detect":
		return s.handleShapesDetect(args)
	case "shapes_annotate":
		return s.handleShapesAnnotate(args)
	case "edge_map":
		return s.handleEdgeMap(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
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

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Shape Detection Handlers ===

// detectionConfig returns the server's detection tuning with per-call
// overrides applied and defaults filled in. Zero overrides leave the
// server configuration alone; fields the server never set come back at
// their documented defaults, so handlers can read tunables directly.
func (s *Server) detectionConfig(edgeThreshold, minContourArea float64) *detection.Config {
	var cfg detection.Config
	if s.cfg != nil {
		cfg = *s.cfg
	}
	if edgeThreshold > 0 {
		cfg.EdgeThreshold = edgeThreshold
	}
	if minContourArea > 0 {
		cfg.MinContourArea = minContourArea
	}
	return cfg.WithDefaults()
}

type shapesDetectArgs struct {
	Path           string  `json:"path"`
	EdgeThreshold  float64 `json:"edge_threshold"`
	MinContourArea float64 `json:"min_contour_area"`
}

func (s *Server) handleShapesDetect(args json.RawMessage) (interface{}, error) {
	var a shapesDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	cfg := s.detectionConfig(a.EdgeThreshold, a.MinContourArea)
	return detection.DetectImage(imaging.Preprocess(img, s.pre), cfg), nil
}

func (s *Server) handleShapesAnnotate(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	processed := imaging.Preprocess(img, s.pre)
	result := detection.DetectImage(processed, s.cfg)
	return imaging.Annotate(processed, result.Shapes)
}

// EdgeMapResult contains the binary edge map of an image as base64 PNG.
type EdgeMapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	EdgeCount   int    `json:"edge_count"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

type edgeMapArgs struct {
	Path          string  `json:"path"`
	EdgeThreshold float64 `json:"edge_threshold"`
}

func (s *Server) handleEdgeMap(args json.RawMessage) (interface{}, error) {
	var a edgeMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	cfg := s.detectionConfig(a.EdgeThreshold, 0)
	edges := detection.DetectEdges(
		detection.GrayscaleImage(imaging.Preprocess(img, s.pre)), cfg.EdgeThreshold)

	rendered := edges.Image()
	edgeCount := 0
	for _, p := range rendered.Pix {
		if p != 0 {
			edgeCount++
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rendered); err != nil {
		return nil, fmt.Errorf("failed to encode edge map: %w", err)
	}

	return &EdgeMapResult{
		Width:       edges.Width,
		Height:      edges.Height,
		EdgeCount:   edgeCount,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
