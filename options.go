package imagehash

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by hasher constructors when the requested
// configuration cannot produce a well-formed hash, for example a hash
// grid larger than the preprocessed image provides.
var ErrInvalidConfig = errors.New("invalid hasher configuration")

// config holds the frozen parameters shared by all hashers. It is built
// from per-algorithm defaults, adjusted by options, validated once at
// construction time and never mutated afterwards.
type config struct {
	imageWidth  int
	imageHeight int
	hashWidth   int
	hashHeight  int
	resizer     Resizer
	gray        GrayConverter
}

// Option overrides a single field of a hasher configuration before it
// is frozen.
type Option func(*config)

// WithImageSize sets the dimensions the source image is resized to
// before hashing.
func WithImageSize(width, height int) Option {
	return func(c *config) {
		c.imageWidth = width
		c.imageHeight = height
	}
}

// WithHashSize sets the dimensions of the thresholded output grid. The
// resulting hash has width*height bits.
func WithHashSize(width, height int) Option {
	return func(c *config) {
		c.hashWidth = width
		c.hashHeight = height
	}
}

// WithResizer sets the resampling strategy used by the preprocessing
// pipeline. The default is Lanczos.
func WithResizer(r Resizer) Option {
	return func(c *config) {
		c.resizer = r
	}
}

// WithGrayConverter sets the grayscale conversion used by the
// preprocessing pipeline. The default is BT601Gray.
func WithGrayConverter(g GrayConverter) Option {
	return func(c *config) {
		c.gray = g
	}
}

func newConfig(imageWidth, imageHeight, hashWidth, hashHeight int, opts []Option) config {
	c := config{
		imageWidth:  imageWidth,
		imageHeight: imageHeight,
		hashWidth:   hashWidth,
		hashHeight:  hashHeight,
		resizer:     Lanczos,
		gray:        BT601Gray,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// validate checks the constraints common to every algorithm. Algorithm
// specific constraints (such as the extra gradient column of the
// difference hash) are checked by the respective constructors.
func (c config) validate() error {
	if c.imageWidth <= 0 || c.imageHeight <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.imageWidth, c.imageHeight)
	}
	if c.hashWidth <= 0 || c.hashHeight <= 0 {
		return fmt.Errorf("%w: hash size %dx%d", ErrInvalidConfig, c.hashWidth, c.hashHeight)
	}
	if c.resizer == nil {
		return fmt.Errorf("%w: nil resizer", ErrInvalidConfig)
	}
	if c.gray == nil {
		return fmt.Errorf("%w: nil grayscale converter", ErrInvalidConfig)
	}
	if c.hashHeight > c.imageHeight {
		return fmt.Errorf("%w: hash height %d exceeds image height %d",
			ErrInvalidConfig, c.hashHeight, c.imageHeight)
	}
	return nil
}
