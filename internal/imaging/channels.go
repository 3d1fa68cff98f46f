package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/channel"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Source adapts a decoded image.Image to the histogram core's ChannelSource
// interface. Components are reported in R, G, B order, with alpha as a
// fourth channel when the image carries one.
type Source struct {
	img      image.Image
	channels []channel.Channel
}

// NewSource wraps img for per-channel region sampling.
func NewSource(img image.Image) *Source {
	channels := []channel.Channel{channel.Red, channel.Green, channel.Blue}
	if hasAlpha(img) {
		channels = append(channels, channel.Alpha)
	}
	return &Source{img: img, channels: channels}
}

// Components returns the number of channels the source exposes.
func (s *Source) Components() int {
	return len(s.channels)
}

// ChannelValues extracts one channel of the image and returns its 8-bit
// pixel values inside region as float64 scalars, in row-major order.
func (s *Source) ChannelValues(ch int, region image.Rectangle) ([]float64, error) {
	if ch < 0 || ch >= len(s.channels) {
		return nil, fmt.Errorf("channel %d out of range (image has %d components)", ch, len(s.channels))
	}
	if err := validateRegion(s.img, region); err != nil {
		return nil, err
	}

	cropped := imaging.Crop(s.img, region)
	gray := channel.Extract(cropped, s.channels[ch])

	bounds := gray.Bounds()
	values := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			values = append(values, float64(gray.GrayAt(x, y).Y))
		}
	}
	return values, nil
}

// Luminance returns the CIE L* lightness of every pixel inside region,
// scaled to [0, 255] and in row-major order. A luminance histogram compares
// images independently of their channel counts.
//
// Fully transparent pixels have no recoverable color and contribute 0.
func Luminance(img image.Image, region image.Rectangle) ([]float64, error) {
	if err := validateRegion(img, region); err != nil {
		return nil, err
	}

	values := make([]float64, 0, region.Dx()*region.Dy())
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			col, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				values = append(values, 0)
				continue
			}
			l, _, _ := col.Lab()
			// Conversion drift can push L a hair past the nominal [0, 1];
			// keep samples inside the histogram range.
			values = append(values, clamp(l*255, 0, 255))
		}
	}
	return values, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func validateRegion(img image.Image, region image.Rectangle) error {
	bounds := img.Bounds()
	if region.Empty() {
		return fmt.Errorf("empty region (%d,%d)-(%d,%d)",
			region.Min.X, region.Min.Y, region.Max.X, region.Max.Y)
	}
	if !region.In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.Min.X, region.Min.Y, region.Max.X, region.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}
