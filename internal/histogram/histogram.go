package histogram

import (
	"fmt"
	"math"
)

// Histogram is an ordered sequence of non-negative bin counts. Index 0 is
// the lowest-value bin. For concatenated multi-channel histograms the
// per-channel histograms are laid end to end in channel order.
type Histogram []float64

// Sum returns the total mass of the histogram.
func (h Histogram) Sum() float64 {
	var total float64
	for _, count := range h {
		total += count
	}
	return total
}

// Value is the set of sample types that can be binned: anything supporting
// ordering and subtraction against the range bounds.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// BinError reports a sample that mapped outside the valid bin range, meaning
// the caller passed a value outside [RangeMin, RangeMax]. It carries the full
// binning context so the offending call site can be diagnosed from the
// message alone.
type BinError struct {
	Bin         int     // bin index that was computed
	Index       int     // position of the offending sample in the input
	Value       float64 // the offending sample value
	SampleCount int     // total number of samples in the input
	RangeMin    float64
	RangeMax    float64
	BinWidth    float64
}

func (e *BinError) Error() string {
	return fmt.Sprintf(
		"can't write to bin %d: values[%d] = %v with %d values, range [%v, %v], bin width %v",
		e.Bin, e.Index, e.Value, e.SampleCount, e.RangeMin, e.RangeMax, e.BinWidth)
}

// zeroWidthTolerance is the threshold below which a bin width is treated as
// degenerate. Dividing by a near-zero width would produce nonsensical bin
// indices, so such ranges yield an all-zero histogram instead.
const zeroWidthTolerance = 1e-6

// Scalar bins values into bins equal-width bins over [rangeMin, rangeMax],
// both ends inclusive.
//
// A degenerate range (bin width indistinguishable from zero) returns a
// zero-filled histogram of the requested length. A value exactly equal to
// rangeMax is counted in the last bin. Any value outside the range returns a
// *BinError and no histogram.
//
// Absent errors, the returned histogram has length bins and its counts total
// len(values).
func Scalar[V Value](values []V, bins int, rangeMin, rangeMax V) (Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram needs at least 1 bin, got %d", bins)
	}

	counts := make(Histogram, bins)

	binWidth := (float64(rangeMax) - float64(rangeMin)) / float64(bins)
	if math.Abs(binWidth) < zeroWidthTolerance {
		return counts, nil
	}

	for i, v := range values {
		// Exact top-of-range match goes to the last bin. No epsilon
		// arithmetic: for bounded types like uint8, rangeMax+epsilon
		// overflows.
		if v == rangeMax {
			counts[bins-1]++
			continue
		}

		bin := int((float64(v) - float64(rangeMin)) / binWidth)
		if bin < 0 || bin >= bins {
			return nil, &BinError{
				Bin:         bin,
				Index:       i,
				Value:       float64(v),
				SampleCount: len(values),
				RangeMin:    float64(rangeMin),
				RangeMax:    float64(rangeMax),
				BinWidth:    binWidth,
			}
		}
		counts[bin]++
	}

	return counts, nil
}
