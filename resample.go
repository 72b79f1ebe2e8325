package imagehash

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Resizer scales an image to exactly width x height pixels, ignoring the
// source aspect ratio. It is the pluggable resampling strategy of the
// preprocessing pipeline: a pure function of its inputs, so a single
// Resizer may be shared across hashers and goroutines.
//
// A Resizer must honor the requested dimensions. Hashing fails with
// ErrSizeMismatch if the returned image has any other size.
type Resizer func(img image.Image, width, height int) image.Image

// Lanczos is the default Resizer: a 3-lobe windowed-sinc resampler
// (disintegration/imaging's Lanczos filter). It is the highest-quality
// general-purpose choice for both downscaling and upscaling.
func Lanczos(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// ImagingResizer returns a Resizer backed by disintegration/imaging
// using the given resample filter, e.g. imaging.Box for speed or
// imaging.CatmullRom for a sharper cubic.
func ImagingResizer(filter imaging.ResampleFilter) Resizer {
	return func(img image.Image, width, height int) image.Image {
		return imaging.Resize(img, width, height, filter)
	}
}

// BildResizer returns a Resizer backed by bild/transform using the
// given resample filter, e.g. transform.Lanczos or transform.Linear.
func BildResizer(filter transform.ResampleFilter) Resizer {
	return func(img image.Image, width, height int) image.Image {
		return transform.Resize(img, width, height, filter)
	}
}

// NfntResizer returns a Resizer backed by nfnt/resize using the given
// interpolation function, e.g. resize.Lanczos3 or resize.Bicubic.
func NfntResizer(interp resize.InterpolationFunction) Resizer {
	return func(img image.Image, width, height int) image.Image {
		return resize.Resize(uint(width), uint(height), img, interp)
	}
}

// ScalerResizer returns a Resizer backed by a golang.org/x/image/draw
// scaler, e.g. xdraw.CatmullRom or xdraw.ApproxBiLinear.
func ScalerResizer(scaler xdraw.Scaler) Resizer {
	return func(img image.Image, width, height int) image.Image {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		return dst
	}
}
