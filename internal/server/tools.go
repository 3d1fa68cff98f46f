package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool taking an image path.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// regionProperty is the schema fragment for an optional rectangular region.
func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Rectangular region to analyze. Omit for the full image. (x1,y1) inclusive top-left, (x2,y2) exclusive bottom-right.",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// binningProperties are the schema fragments for bin count and value range.
func binningProperties() map[string]interface{} {
	return map[string]interface{}{
		"bins": map[string]interface{}{
			"type":        "integer",
			"description": "Number of bins per channel. Default 16",
			"default":     16,
		},
		"range_min": map[string]interface{}{
			"type":        "number",
			"description": "Inclusive lower bound of the value range. Default 0",
			"default":     0,
		},
		"range_max": map[string]interface{}{
			"type":        "number",
			"description": "Inclusive upper bound of the value range. Default 255",
			"default":     255,
		},
	}
}

// histogramProps builds the property set shared by the computation tools,
// merged with any tool-specific extras.
func histogramProps(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path":   pathProperty(),
		"region": regionProperty(),
	}
	for k, v := range binningProperties() {
		props[k] = v
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// compareProps builds the property set of the two-image comparison tool.
func compareProps() map[string]interface{} {
	props := map[string]interface{}{
		"path1":   pathProperty(),
		"region1": regionProperty(),
		"path2":   pathProperty(),
		"region2": regionProperty(),
	}
	for k, v := range binningProperties() {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and component count. Component count times bins gives the length of a concatenated region histogram.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Histogram Computation
		{
			Name:        "histogram_region",
			Description: "Compute the concatenated per-channel histogram of an image region: each channel is binned over the shared value range and the per-channel histograms are laid end to end in channel order. Optionally persists the result as a space-separated text dump.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": histogramProps(map[string]interface{}{
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the histogram to, overwriting existing content",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "histogram_channel",
			Description: "Compute the histogram of a single channel of an image region. Channels are indexed 0=red, 1=green, 2=blue, 3=alpha (when present).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": histogramProps(map[string]interface{}{
					"channel": map[string]interface{}{
						"type":        "integer",
						"description": "Channel index (0-based)",
					},
				}),
				"required": []string{"path", "channel"},
			},
		},
		{
			Name:        "histogram_luminance",
			Description: "Compute the histogram of CIE L* lightness (scaled 0-255) over an image region. Useful for comparing images regardless of their channel counts.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": histogramProps(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "histogram_write",
			Description: "Compute the concatenated region histogram of an image and write it to a file as space-separated bin counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": histogramProps(map[string]interface{}{
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Destination path for the histogram text dump",
					},
				}),
				"required": []string{"path", "output_path"},
			},
		},

		// Histogram Comparison
		{
			Name:        "histogram_compare",
			Description: "Compute concatenated histograms for two image regions with shared binning parameters and return their intersection scores. score normalizes by the first histogram's mass, reverse_score by the second's.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": compareProps(),
				"required":   []string{"path1", "path2"},
			},
		},
		{
			Name:        "histogram_file_compare",
			Description: "Read two previously written histogram dumps and return their intersection scores. Histograms of different lengths score 0.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path1": map[string]interface{}{
						"type":        "string",
						"description": "Path to the first histogram text dump",
					},
					"path2": map[string]interface{}{
						"type":        "string",
						"description": "Path to the second histogram text dump",
					},
				},
				"required": []string{"path1", "path2"},
			},
		},
	}
}
