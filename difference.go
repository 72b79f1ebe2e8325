package imagehash

import (
	"fmt"
	"image"
)

// DifferenceHash computes the difference hash (dHash) of an image: each
// bit records whether a pixel is brighter than its left neighbor, so
// the hash captures horizontal gradients rather than absolute levels.
type DifferenceHash struct {
	cfg config
}

// NewDifferenceHash builds a DifferenceHash from the default
// configuration (9x8 image, 8x8 hash, Lanczos resizer, BT.601
// grayscale) adjusted by the given options.
//
// Each row of the hash compares hashWidth pairs of adjacent pixels, so
// the image width must be at least hashWidth+1. Configurations that
// would under-produce gradient bits are rejected here rather than
// silently truncated.
func NewDifferenceHash(opts ...Option) (*DifferenceHash, error) {
	cfg := newConfig(9, 8, 8, 8, opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.imageWidth < cfg.hashWidth+1 {
		return nil, fmt.Errorf("%w: image width %d yields fewer than %d gradients per row (need at least %d columns)",
			ErrInvalidConfig, cfg.imageWidth, cfg.hashWidth, cfg.hashWidth+1)
	}
	return &DifferenceHash{cfg: cfg}, nil
}

// DefaultDifferenceHash returns a DifferenceHash with the default
// 9x8-image, 8x8-hash configuration, which yields 64-bit hashes.
func DefaultDifferenceHash() *DifferenceHash {
	h, _ := NewDifferenceHash() // defaults always validate
	return h
}

// Hash computes the difference hash of img.
//
// The image is preprocessed to the configured image size. For each of
// the first hashHeight rows, bit x is set when pixel x+1 is strictly
// greater than pixel x; rows are concatenated in row-major order.
func (d *DifferenceHash) Hash(img image.Image) (Hash, error) {
	gray, err := preprocess(img, d.cfg.imageWidth, d.cfg.imageHeight, d.cfg.resizer, d.cfg.gray)
	if err != nil {
		return Hash{}, fmt.Errorf("difference hash: %w", err)
	}

	bits := make([]bool, 0, d.cfg.hashWidth*d.cfg.hashHeight)
	for y := 0; y < d.cfg.hashHeight; y++ {
		row := gray.row(y)
		for x := 0; x < d.cfg.hashWidth; x++ {
			bits = append(bits, row[x+1] > row[x])
		}
	}
	return newHash(bits), nil
}
