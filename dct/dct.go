// Package dct implements the one-dimensional type-II discrete cosine
// transform used by the perceptual hash.
//
// The transform is unnormalized: no orthogonality scaling is applied
// beyond the constant factor of 2 in the definition. The perceptual
// hash thresholds coefficients against their own mean, so any constant
// scale factor cancels out, but the exact convention is kept so that
// hash values are reproducible across implementations.
package dct

import "math"

// Transform computes the unnormalized type-II DCT of in:
//
//	X[k] = 2 * Σ_{i=0}^{N-1} in[i] * cos(π*k*(2i+1)/(2N))
//
// for k in [0, N). All arithmetic is double precision. The direct
// O(N²) evaluation is intentional: hash rows are at most a few dozen
// samples wide, so a fast transform would buy nothing.
func Transform(in []float64) []float64 {
	n := len(in)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i, v := range in {
			sum += v * math.Cos(math.Pi*float64(k)*float64(2*i+1)/float64(2*n))
		}
		out[k] = 2 * sum
	}
	return out
}
