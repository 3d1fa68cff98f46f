// Package imaging supplies the image-side collaborators for the histogram
// core: loading and caching decoded images, extracting single channels,
// sampling pixel values inside rectangular regions, and deriving a luminance
// pseudo-channel.
//
// The histogram core depends only on the histogram.ChannelSource interface;
// Source in this package is the adapter that implements it over a standard
// image.Image.
//
// # Coordinate System
//
// Regions use image.Rectangle with the usual Go convention: Min is the
// inclusive top-left corner, Max the exclusive bottom-right corner, (0,0) at
// the top-left of the image, X increasing rightward and Y downward.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Source is a read-only view over an
// immutable decoded image and can be shared freely.
package imaging
