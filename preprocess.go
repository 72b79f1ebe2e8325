package imagehash

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrEmptyImage is returned when the source image has zero width or
	// height. Degenerate inputs are rejected before resampling rather
	// than silently producing an empty buffer.
	ErrEmptyImage = errors.New("image has zero width or height")

	// ErrSizeMismatch is returned when a pixel buffer does not match its
	// declared dimensions, typically because a custom Resizer ignored
	// the requested target size.
	ErrSizeMismatch = errors.New("pixel buffer does not match declared dimensions")
)

// GrayConverter reduces a color image to a single-channel intensity
// image. Any deterministic conversion that is monotonic in perceived
// brightness is acceptable; the resulting per-pixel intensity byte is
// what the hash algorithms consume.
type GrayConverter func(img image.Image) image.Image

// BT601Gray is the default GrayConverter. It applies the standard
// ITU-R BT.601 luminance weighting (0.299*R + 0.587*G + 0.114*B) via
// disintegration/imaging.
func BT601Gray(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

// LabGray converts each pixel to its CIE-Lab lightness, a perceptually
// uniform alternative to BT601Gray. Hash bit patterns differ between
// converters, so hashes are only comparable when produced with the same
// configuration.
func LabGray(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel, no meaningful color.
				gray.SetGray(x, y, color.Gray{})
				continue
			}
			l, _, _ := c.Lab()
			if l < 0 {
				l = 0
			} else if l > 1 {
				l = 1
			}
			gray.SetGray(x, y, color.Gray{Y: uint8(l*255 + 0.5)})
		}
	}
	return gray
}

// grayImage is an immutable rectangular grid of intensity samples in a
// flat row-major buffer. It is the common input of every hash algorithm
// and lives only for the duration of a single Hash call.
type grayImage struct {
	pixels []uint8
	width  int
	height int
}

func newGrayImage(pixels []uint8, width, height int) (*grayImage, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrSizeMismatch, len(pixels), width, height)
	}
	return &grayImage{pixels: pixels, width: width, height: height}, nil
}

// row returns the y-th row as a view into the flat buffer, not a copy.
func (g *grayImage) row(y int) []uint8 {
	return g.pixels[y*g.width : (y+1)*g.width]
}

// preprocess converts img to grayscale and resizes it to exactly
// width x height, producing the intensity buffer the hash algorithms
// operate on. It is a pure function of (img, size, resizer, converter).
func preprocess(img image.Image, width, height int, resizer Resizer, gray GrayConverter) (*grayImage, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	resized := resizer(gray(img), width, height)
	rb := resized.Bounds()
	if rb.Dx() != width || rb.Dy() != height {
		return nil, fmt.Errorf("%w: resizer returned %dx%d, want %dx%d",
			ErrSizeMismatch, rb.Dx(), rb.Dy(), width, height)
	}

	pixels := make([]uint8, 0, width*height)
	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			c := color.GrayModel.Convert(resized.At(x, y)).(color.Gray)
			pixels = append(pixels, c.Y)
		}
	}
	return newGrayImage(pixels, width, height)
}
