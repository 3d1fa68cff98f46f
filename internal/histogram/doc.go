// Package histogram computes fixed-bin histograms over image regions and
// compares the resulting bin-count vectors.
//
// The package is a pure numeric core: it turns sequences of scalar samples
// into bin counts, concatenates per-channel histograms of a multi-channel
// image region into one vector, scores two histograms with the histogram
// intersection metric, and dumps histograms to a whitespace-delimited text
// form. Image decoding, channel extraction, and region sampling are supplied
// by collaborators through the narrow ChannelSource interface, so the core
// never depends on a concrete image representation and can be tested with
// synthetic in-memory sample arrays.
//
// # Binning
//
// A histogram over [rangeMin, rangeMax] with N bins has uniform bin width
// (rangeMax-rangeMin)/N. Index 0 is the lowest-value bin, index N-1 the
// highest. A sample exactly equal to rangeMax lands in the last bin; this is
// an exact-match short-circuit rather than an epsilon clamp, because adding
// an epsilon to the top of the range overflows bounded sample types (a uint8
// pixel value of 255 has nowhere to go).
//
// # Error Handling
//
// Two failure policies coexist:
//
//   - A sample outside [rangeMin, rangeMax] is a hard failure: Scalar returns
//     a *BinError carrying full diagnostics, and Concatenated aborts without
//     a partial result. Silently clamping or dropping the sample would corrupt
//     downstream statistics without detection.
//   - A length mismatch between the two histograms handed to Intersection is
//     reported to the log and scored as 0, so a single malformed histogram
//     does not abort a batch comparison loop.
//
// Counts are stored as float64 so histograms can later be normalized without
// truncation. Every computation returns a fresh Histogram; results are never
// shared or mutated across calls.
package histogram
