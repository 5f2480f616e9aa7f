// Package server implements the MCP (Model Context Protocol) server for the
// shape detection pipeline.
//
// This package provides a JSON-RPC 2.0 server that exposes the detector
// through the MCP protocol, so MCP-compatible clients can analyze images
// without linking the pipeline directly.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Shape Detection:
//   - shapes_detect: Run the detection pipeline, returning classified shapes
//   - shapes_annotate: Render detections over the image as base64 PNG
//   - edge_map: Render the binary Sobel edge map as base64 PNG
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
