package imagehash

import (
	"fmt"
	"image"
)

// AverageHash computes the average hash (aHash) of an image: every
// pixel of the preprocessed grayscale image is thresholded against the
// mean intensity, producing one bit per pixel.
//
// The mean is accumulated in floating point. For 8-bit samples this is
// threshold-equivalent to the classic integer-truncated mean (an
// integer sample exceeds the truncated mean exactly when it exceeds the
// real mean) while avoiding truncation bias for non-default windows.
type AverageHash struct {
	cfg config
}

// NewAverageHash builds an AverageHash from the default configuration
// (8x8 image, 8x8 hash, Lanczos resizer, BT.601 grayscale) adjusted by
// the given options. The hash size must fit inside the image size.
func NewAverageHash(opts ...Option) (*AverageHash, error) {
	cfg := newConfig(8, 8, 8, 8, opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.hashWidth > cfg.imageWidth {
		return nil, fmt.Errorf("%w: hash width %d exceeds image width %d",
			ErrInvalidConfig, cfg.hashWidth, cfg.imageWidth)
	}
	return &AverageHash{cfg: cfg}, nil
}

// DefaultAverageHash returns an AverageHash with the default 8x8
// configuration, which yields 64-bit hashes.
func DefaultAverageHash() *AverageHash {
	h, _ := NewAverageHash() // defaults always validate
	return h
}

// Hash computes the average hash of img.
//
// The image is preprocessed to the configured image size. Both the mean
// and the output bits are restricted to the first hashHeight rows and
// hashWidth columns of the preprocessed buffer, scanned row-major. A
// bit is set when its pixel is strictly greater than the mean; ties
// produce zero bits.
func (a *AverageHash) Hash(img image.Image) (Hash, error) {
	gray, err := preprocess(img, a.cfg.imageWidth, a.cfg.imageHeight, a.cfg.resizer, a.cfg.gray)
	if err != nil {
		return Hash{}, fmt.Errorf("average hash: %w", err)
	}

	var sum float64
	for y := 0; y < a.cfg.hashHeight; y++ {
		row := gray.row(y)
		for x := 0; x < a.cfg.hashWidth; x++ {
			sum += float64(row[x])
		}
	}
	mean := sum / float64(a.cfg.hashWidth*a.cfg.hashHeight)

	bits := make([]bool, 0, a.cfg.hashWidth*a.cfg.hashHeight)
	for y := 0; y < a.cfg.hashHeight; y++ {
		row := gray.row(y)
		for x := 0; x < a.cfg.hashWidth; x++ {
			bits = append(bits, float64(row[x]) > mean)
		}
	}
	return newHash(bits), nil
}
