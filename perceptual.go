package imagehash

import (
	"fmt"
	"image"

	"github.com/pictools/imagehash/dct"
)

// PerceptualHash computes the perceptual hash (pHash) of an image by
// thresholding a low-frequency sub-band of its discrete cosine
// transform, making it more robust to scaling and compression
// artifacts than the purely spatial hashes.
//
// The transform is applied to rows only, not as a full 2-D DCT. This is
// the defining characteristic of this variant: it determines the exact
// hash values, and hashes are only comparable with other row-transform
// implementations.
type PerceptualHash struct {
	cfg config
}

// NewPerceptualHash builds a PerceptualHash from the default
// configuration (32x32 image, 8x8 hash, Lanczos resizer, BT.601
// grayscale) adjusted by the given options.
//
// The image is deliberately resized larger than the hash grid to retain
// enough frequency resolution before the high frequencies are
// discarded. Because the DC coefficient is skipped, the image width
// must be at least hashWidth+1.
func NewPerceptualHash(opts ...Option) (*PerceptualHash, error) {
	cfg := newConfig(32, 32, 8, 8, opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.imageWidth < cfg.hashWidth+1 {
		return nil, fmt.Errorf("%w: image width %d leaves fewer than %d coefficients after the DC term",
			ErrInvalidConfig, cfg.imageWidth, cfg.hashWidth)
	}
	return &PerceptualHash{cfg: cfg}, nil
}

// DefaultPerceptualHash returns a PerceptualHash with the default
// 32x32-image, 8x8-hash configuration, which yields 64-bit hashes.
func DefaultPerceptualHash() *PerceptualHash {
	h, _ := NewPerceptualHash() // defaults always validate
	return h
}

// Hash computes the perceptual hash of img.
//
// The image is preprocessed to the configured image size, then every
// one of the first hashHeight rows is transformed with a 1-D type-II
// DCT. From each transformed row, coefficients 1 through hashWidth are
// kept (the DC coefficient at index 0 carries no structural information
// and is skipped). A bit is set when its coefficient is strictly
// greater than the arithmetic mean of the whole sub-band, scanned in
// the same row-major order the coefficients were selected in.
func (p *PerceptualHash) Hash(img image.Image) (Hash, error) {
	gray, err := preprocess(img, p.cfg.imageWidth, p.cfg.imageHeight, p.cfg.resizer, p.cfg.gray)
	if err != nil {
		return Hash{}, fmt.Errorf("perceptual hash: %w", err)
	}

	subBand := make([]float64, 0, p.cfg.hashWidth*p.cfg.hashHeight)
	rowBuf := make([]float64, p.cfg.imageWidth)
	for y := 0; y < p.cfg.hashHeight; y++ {
		for x, v := range gray.row(y) {
			rowBuf[x] = float64(v)
		}
		coefs := dct.Transform(rowBuf)
		subBand = append(subBand, coefs[1:p.cfg.hashWidth+1]...)
	}

	var sum float64
	for _, c := range subBand {
		sum += c
	}
	mean := sum / float64(len(subBand))

	bits := make([]bool, len(subBand))
	for i, c := range subBand {
		bits[i] = c > mean
	}
	return newHash(bits), nil
}
