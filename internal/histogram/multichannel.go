package histogram

import (
	"fmt"
	"image"
)

// ChannelSource is the entire surface the histogram core requires from an
// image library: a component count and per-channel pixel sampling over a
// rectangular region. Adapters implement it over whatever image
// representation the surrounding system uses; tests implement it with
// synthetic in-memory arrays.
type ChannelSource interface {
	// Components returns the number of channels in the image.
	Components() int

	// ChannelValues returns the pixel values of one channel inside region,
	// extracted as scalars. Channel indices run from 0 to Components()-1.
	ChannelValues(channel int, region image.Rectangle) ([]float64, error)
}

// Concatenated computes the per-channel histograms of an image region and
// lays them end to end into a single vector, in channel order. Every channel
// is binned with the same bin count and the same [rangeMin, rangeMax].
//
// The result has length src.Components() * binsPerChannel. Channel order is
// deterministic and matches the source's component ordering, which is the
// contract callers rely on when comparing histograms computed the same way
// on two images.
//
// Any extraction or binning error aborts the computation; no partial result
// is returned.
func Concatenated(src ChannelSource, region image.Rectangle, binsPerChannel int, rangeMin, rangeMax float64) (Histogram, error) {
	components := src.Components()
	concatenated := make(Histogram, 0, components*binsPerChannel)

	for channel := 0; channel < components; channel++ {
		values, err := src.ChannelValues(channel, region)
		if err != nil {
			return nil, fmt.Errorf("failed to extract channel %d: %w", channel, err)
		}

		h, err := Scalar(values, binsPerChannel, rangeMin, rangeMax)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", channel, err)
		}

		concatenated = append(concatenated, h...)
	}

	return concatenated, nil
}
