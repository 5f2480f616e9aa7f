package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"shapes_detect",
		"shapes_annotate",
		"edge_map",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	// Every tool operates on an image file, so every schema must require
	// the path argument.
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema missing 'required' list")
			}

			found := false
			for _, name := range required {
				if name == "path" {
					found = true
				}
			}
			if !found {
				t.Error("'path' should be a required argument")
			}
		})
	}
}

func TestToolDefinitions_EdgeThresholdDefault(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "shapes_detect" && tool.Name != "edge_map" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		et, ok := props["edge_threshold"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: missing edge_threshold property", tool.Name)
			continue
		}
		if et["default"] != 128 {
			t.Errorf("%s: edge_threshold default = %v, want 128", tool.Name, et["default"])
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should match GetToolDefinitions
	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}

func TestToolStruct(t *testing.T) {
	tool := Tool{
		Name:        "test_tool",
		Description: "A test tool",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"param1": map[string]interface{}{
					"type":        "string",
					"description": "A test parameter",
				},
			},
			"required": []string{"param1"},
		},
	}

	if tool.Name != "test_tool" {
		t.Errorf("Name: got %s, want test_tool", tool.Name)
	}
	if tool.Description != "A test tool" {
		t.Errorf("Description: got %s, want 'A test tool'", tool.Description)
	}
	if tool.InputSchema == nil {
		t.Error("InputSchema should not be nil")
	}
}
