package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/histogram-mcp/internal/histogram"
	"github.com/ironsheep/histogram-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "histogram_region").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Histogram Computation
	case "histogram_region":
		return s.handleHistogramRegion(args)
	case "histogram_channel":
		return s.handleHistogramChannel(args)
	case "histogram_luminance":
		return s.handleHistogramLuminance(args)
	case "histogram_write":
		return s.handleHistogramWrite(args)

	// Histogram Comparison
	case "histogram_compare":
		return s.handleHistogramCompare(args)
	case "histogram_file_compare":
		return s.handleHistogramFileCompare(args)

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

// === Image Information Handlers ===

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

// === Histogram Computation Handlers ===

// regionArgs is the optional rectangular region shared by the histogram
// tools. A nil region means the full image.
type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// histogramArgs are the shared parameters of the histogram tools. Bins
// defaults to 16 and the range to [0, 255], matching 8-bit channel values.
type histogramArgs struct {
	Path     string      `json:"path"`
	Region   *regionArgs `json:"region,omitempty"`
	Bins     int         `json:"bins"`
	RangeMin float64     `json:"range_min"`
	RangeMax float64     `json:"range_max"`
}

func (a *histogramArgs) applyDefaults() {
	if a.Bins == 0 {
		a.Bins = 16
	}
	if a.RangeMax == 0 {
		a.RangeMax = 255
	}
}

func resolveRegion(img image.Image, r *regionArgs) image.Rectangle {
	if r == nil {
		return img.Bounds()
	}
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// HistogramResult contains a computed histogram and its shape.
type HistogramResult struct {
	Bins           []float64 `json:"bins"`
	BinsPerChannel int       `json:"bins_per_channel"`
	Components     int       `json:"components"`
	RangeMin       float64   `json:"range_min"`
	RangeMax       float64   `json:"range_max"`
}

type histogramRegionArgs struct {
	histogramArgs
	OutputPath string `json:"output_path,omitempty"`
}

func (s *Server) handleHistogramRegion(args json.RawMessage) (interface{}, error) {
	var a histogramRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	a.applyDefaults()

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src := imaging.NewSource(img)
	h, err := histogram.Concatenated(src, resolveRegion(img, a.Region), a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := histogram.WriteFile(h, a.OutputPath); err != nil {
			return nil, err
		}
	}

	return &HistogramResult{
		Bins:           h,
		BinsPerChannel: a.Bins,
		Components:     src.Components(),
		RangeMin:       a.RangeMin,
		RangeMax:       a.RangeMax,
	}, nil
}

type histogramChannelArgs struct {
	histogramArgs
	Channel int `json:"channel"`
}

func (s *Server) handleHistogramChannel(args json.RawMessage) (interface{}, error) {
	var a histogramChannelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	a.applyDefaults()

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	src := imaging.NewSource(img)
	values, err := src.ChannelValues(a.Channel, resolveRegion(img, a.Region))
	if err != nil {
		return nil, err
	}

	h, err := histogram.Scalar(values, a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, err
	}

	return &HistogramResult{
		Bins:           h,
		BinsPerChannel: a.Bins,
		Components:     1,
		RangeMin:       a.RangeMin,
		RangeMax:       a.RangeMax,
	}, nil
}

func (s *Server) handleHistogramLuminance(args json.RawMessage) (interface{}, error) {
	var a histogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	a.applyDefaults()

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	values, err := imaging.Luminance(img, resolveRegion(img, a.Region))
	if err != nil {
		return nil, err
	}

	h, err := histogram.Scalar(values, a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, err
	}

	return &HistogramResult{
		Bins:           h,
		BinsPerChannel: a.Bins,
		Components:     1,
		RangeMin:       a.RangeMin,
		RangeMax:       a.RangeMax,
	}, nil
}

// WriteResult reports a persisted histogram dump.
type WriteResult struct {
	OutputPath  string `json:"output_path"`
	BinsWritten int    `json:"bins_written"`
}

type histogramWriteArgs struct {
	histogramArgs
	OutputPath string `json:"output_path"`
}

func (s *Server) handleHistogramWrite(args json.RawMessage) (interface{}, error) {
	var a histogramWriteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("output_path is required")
	}
	a.applyDefaults()

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	h, err := histogram.Concatenated(imaging.NewSource(img), resolveRegion(img, a.Region), a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, err
	}

	if err := histogram.WriteFile(h, a.OutputPath); err != nil {
		return nil, err
	}

	return &WriteResult{
		OutputPath:  a.OutputPath,
		BinsWritten: len(h),
	}, nil
}

// === Histogram Comparison Handlers ===

// CompareResult contains the intersection scores of two histograms.
//
// Score normalizes by the first histogram's mass and ReverseScore by the
// second's; the metric is asymmetric, so callers wanting a symmetric measure
// average the two.
type CompareResult struct {
	Score        float64 `json:"score"`
	ReverseScore float64 `json:"reverse_score"`
	BinCount     int     `json:"bin_count"`
}

type histogramCompareArgs struct {
	Path1    string      `json:"path1"`
	Region1  *regionArgs `json:"region1,omitempty"`
	Path2    string      `json:"path2"`
	Region2  *regionArgs `json:"region2,omitempty"`
	Bins     int         `json:"bins"`
	RangeMin float64     `json:"range_min"`
	RangeMax float64     `json:"range_max"`
}

func (s *Server) handleHistogramCompare(args json.RawMessage) (interface{}, error) {
	var a histogramCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Bins == 0 {
		a.Bins = 16
	}
	if a.RangeMax == 0 {
		a.RangeMax = 255
	}

	h1, err := s.regionHistogram(a.Path1, a.Region1, a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, fmt.Errorf("first image: %w", err)
	}
	h2, err := s.regionHistogram(a.Path2, a.Region2, a.Bins, a.RangeMin, a.RangeMax)
	if err != nil {
		return nil, fmt.Errorf("second image: %w", err)
	}

	return &CompareResult{
		Score:        histogram.Intersection(h1, h2),
		ReverseScore: histogram.Intersection(h2, h1),
		BinCount:     len(h1),
	}, nil
}

func (s *Server) regionHistogram(path string, region *regionArgs, bins int, rangeMin, rangeMax float64) (histogram.Histogram, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return histogram.Concatenated(imaging.NewSource(img), resolveRegion(img, region), bins, rangeMin, rangeMax)
}

type histogramFileCompareArgs struct {
	Path1 string `json:"path1"`
	Path2 string `json:"path2"`
}

func (s *Server) handleHistogramFileCompare(args json.RawMessage) (interface{}, error) {
	var a histogramFileCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	h1, err := histogram.ReadFile(a.Path1)
	if err != nil {
		return nil, err
	}
	h2, err := histogram.ReadFile(a.Path2)
	if err != nil {
		return nil, err
	}

	return &CompareResult{
		Score:        histogram.Intersection(h1, h2),
		ReverseScore: histogram.Intersection(h2, h1),
		BinCount:     len(h1),
	}, nil
}
