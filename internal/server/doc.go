// Package server implements the MCP (Model Context Protocol) server exposing
// region-histogram analysis tools.
//
// This package provides a JSON-RPC 2.0 server that computes fixed-bin
// histograms over image regions and compares them, for MCP-compatible
// clients driving visual similarity workflows.
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
// Image information:
//   - image_load: Load image and get metadata (dimensions, component count)
//   - image_dimensions: Get width and height
//
// Histogram computation:
//   - histogram_region: Concatenated per-channel histogram of a region
//   - histogram_channel: Histogram of a single channel of a region
//   - histogram_luminance: Histogram of CIE L* lightness over a region
//   - histogram_write: Compute a region histogram and persist it as text
//
// Histogram comparison:
//   - histogram_compare: Intersection score of two image regions
//   - histogram_file_compare: Intersection score of two persisted histograms
//
// # Image Caching
//
// The server keeps an in-memory cache of decoded images keyed by path, so
// repeated histogram calls against the same image avoid redundant disk I/O.
// The cache lives for the server process lifetime.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 (or standard JSON-RPC codes for malformed requests). A sample
// outside the requested histogram range is such an error and fails the whole
// call with full binning diagnostics. A histogram length mismatch during
// comparison is not: the comparison succeeds with a score of 0, so batch
// comparison loops on the client side keep running.
package server
