// Package render rasterizes noise generators into images for previews,
// terrain maps, and debugging. It samples a 2D window of a generator,
// maps each value through a palette, and can resample the result with
// golang.org/x/image/draw kernels.
package render

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/procgrid/noise"
)

// Palette maps a noise value in [-1, 1] to a color.
type Palette func(v float64) color.NRGBA

// Grayscale maps -1 to black and 1 to white.
func Grayscale(v float64) color.NRGBA {
	g := grayByte(v)
	return color.NRGBA{R: g, G: g, B: g, A: 255}
}

// Terrain maps noise values to a simple elevation palette: deep water
// below, then shallow water, sand, grass, forest, rock, and snow.
func Terrain(v float64) color.NRGBA {
	switch {
	case v < -0.5:
		return color.NRGBA{R: 20, G: 42, B: 96, A: 255}
	case v < -0.15:
		return color.NRGBA{R: 43, G: 96, B: 158, A: 255}
	case v < -0.05:
		return color.NRGBA{R: 210, G: 190, B: 140, A: 255}
	case v < 0.3:
		return color.NRGBA{R: 88, G: 141, B: 64, A: 255}
	case v < 0.55:
		return color.NRGBA{R: 52, G: 97, B: 44, A: 255}
	case v < 0.8:
		return color.NRGBA{R: 120, G: 115, B: 110, A: 255}
	default:
		return color.NRGBA{R: 240, G: 244, B: 248, A: 255}
	}
}

// Options controls how a field is sampled.
type Options struct {
	// Width and Height are the output size in pixels. Both must be
	// positive.
	Width, Height int
	// Frequency scales pixel coordinates into noise space. Zero means
	// 0.05.
	Frequency float64
	// OffsetX and OffsetY shift the sampled window, in pixels.
	OffsetX, OffsetY float64
	// Extra holds fixed trailing coordinates for generators above two
	// dimensions, e.g. a time axis for animated 3D noise.
	Extra []float64
	// Palette maps values to colors. Nil means Grayscale.
	Palette Palette
}

// defaultFrequency keeps a 256px field at roughly a dozen features.
const defaultFrequency = 0.05

// Field samples g over a 2D window and returns the paletted image. The
// generator must accept 2+len(Extra) coordinates; dimension mismatches
// surface as the generator's own error.
func Field(g noise.Generator, opts Options) (*image.NRGBA, error) {
	pal := opts.Palette
	if pal == nil {
		pal = Grayscale
	}
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	err := sample(g, opts, func(x, y int, v float64) {
		img.SetNRGBA(x, y, pal(v))
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Gray samples g over a 2D window into a grayscale image, -1 black and 1
// white.
func Gray(g noise.Generator, opts Options) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	err := sample(g, opts, func(x, y int, v float64) {
		img.SetGray(x, y, color.Gray{Y: grayByte(v)})
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func sample(g noise.Generator, opts Options, set func(x, y int, v float64)) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("render: field size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	freq := opts.Frequency
	if freq == 0 {
		freq = defaultFrequency
	}
	noise.Logger().Debug("rendering noise field",
		"width", opts.Width, "height", opts.Height, "frequency", freq, "extra", len(opts.Extra))

	coords := make([]float64, 2+len(opts.Extra))
	copy(coords[2:], opts.Extra)
	for y := 0; y < opts.Height; y++ {
		coords[1] = (float64(y) + opts.OffsetY) * freq
		for x := 0; x < opts.Width; x++ {
			coords[0] = (float64(x) + opts.OffsetX) * freq
			v, err := g.Noise(coords...)
			if err != nil {
				return err
			}
			set(x, y, v)
		}
	}
	return nil
}

// Scale resamples src to w x h with a Catmull-Rom kernel.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func grayByte(v float64) uint8 {
	if v < -1 {
		v = -1
	} else if v > 1 {
		v = 1
	}
	return uint8((v + 1) * 127.5)
}
