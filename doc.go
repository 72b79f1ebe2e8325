// Package imagehash computes perceptual hashes of raster images.
//
// A perceptual hash is a compact fingerprint designed so that visually
// similar images produce hashes with a small Hamming distance, while
// unrelated images produce hashes that differ in many bit positions.
// Three algorithms are provided:
//
//   - AverageHash (aHash): thresholds pixel intensities against their mean.
//   - DifferenceHash (dHash): thresholds horizontal intensity gradients
//     between adjacent pixels.
//   - PerceptualHash (pHash): applies a discrete cosine transform to each
//     row and thresholds a low-frequency sub-band against its mean.
//
// All hashers consume an already-decoded image.Image; decoding compressed
// formats is the caller's responsibility. Register the decoders you need
// (image/jpeg, image/png, ...) and pass the result of image.Decode.
//
// # Usage
//
//	hasher := imagehash.DefaultAverageHash()
//	hash, err := hasher.Hash(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hash) // hex-encoded hash string
//
// # Configuration
//
// Each hasher is built from documented defaults which can be overridden
// with functional options before the configuration is frozen:
//
//	hasher, err := imagehash.NewDifferenceHash(
//	    imagehash.WithImageSize(17, 16),
//	    imagehash.WithHashSize(16, 16),
//	)
//
// The preprocessing pipeline (grayscale conversion followed by an exact
// resize) is pluggable: WithResizer accepts any Resizer strategy, and
// constructors are provided for the disintegration/imaging, bild,
// nfnt/resize and golang.org/x/image/draw resamplers. The default is
// Lanczos (3-lobe windowed sinc) via disintegration/imaging.
//
// # Thread Safety
//
// Hashers are immutable after construction and safe for concurrent use.
// Every Hash call allocates its own intermediate buffers and returns an
// independent Hash value; no state is shared between invocations.
//
// # Error Handling
//
// The hashers perform no I/O, so all failures are deterministic given
// identical inputs. Structural problems are reported as wrapped sentinel
// errors: invalid configurations return ErrInvalidConfig at construction
// time, zero-area source images return ErrEmptyImage, and a resizer that
// does not honor the requested dimensions returns ErrSizeMismatch.
package imagehash
