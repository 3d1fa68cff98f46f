package histogram

import (
	"log"
	"math"
)

// Intersection scores the similarity of two histograms: the sum of per-bin
// minima divided by h1's total mass. For non-negative histograms, and h1 with
// positive total, the score is in [0, 1], reaching 1 when h2 covers h1
// everywhere.
//
// The normalization is deliberately asymmetric: the caller passes the
// reference histogram first. Callers needing a symmetric score average the
// two argument orders.
//
// A length mismatch is reported to the log and scored as 0 rather than
// returned as an error, so one malformed histogram does not abort a batch
// comparison loop. A zero-mass h1 yields NaN (or Inf); guarding against it
// is the caller's responsibility.
func Intersection(h1, h2 Histogram) float64 {
	if len(h1) != len(h2) {
		log.Printf("histogram: intersection of mismatched lengths %d and %d, scoring 0", len(h1), len(h2))
		return 0
	}

	var totalIntersection float64
	for bin := range h1 {
		totalIntersection += math.Min(h1[bin], h2[bin])
	}

	return totalIntersection / h1.Sum()
}
