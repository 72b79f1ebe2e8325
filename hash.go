package imagehash

import (
	"encoding/hex"
	"errors"
	"image"
)

// ErrLengthMismatch is returned when comparing hashes of different lengths.
var ErrLengthMismatch = errors.New("hash lengths do not match")

// Hasher computes a perceptual hash of a decoded image.
//
// All hashers in this package satisfy Hasher and are safe for concurrent
// use once constructed.
type Hasher interface {
	Hash(img image.Image) (Hash, error)
}

// Hash is an immutable perceptual hash: an ordered sequence of bits in
// row-major order over the conceptual 2-D hash grid, exactly as produced
// by the algorithm that computed it.
//
// Hash is a value type: it has no identity beyond its bits, and the zero
// value is an empty hash.
type Hash struct {
	bits []bool
}

func newHash(bits []bool) Hash {
	return Hash{bits: bits}
}

// BitLen returns the number of bits in the hash.
func (h Hash) BitLen() int {
	return len(h.bits)
}

// Bits returns a copy of the raw bit sequence in row-major order.
func (h Hash) Bits() []bool {
	bits := make([]bool, len(h.bits))
	copy(bits, h.bits)
	return bits
}

// Bytes packs the bit sequence into bytes, most significant bit first:
// bit i maps to byte i/8, bit position 7-(i%8). A trailing partial byte
// is zero-padded in its low bits.
func (h Hash) Bytes() []byte {
	packed := make([]byte, (len(h.bits)+7)/8)
	for i, bit := range h.bits {
		if bit {
			packed[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return packed
}

// String returns the hash as a lowercase hex string, two digits per
// packed byte, with no separators or prefix. A 64-bit hash yields 16
// characters.
func (h Hash) String() string {
	return hex.EncodeToString(h.Bytes())
}

// Distance returns the Hamming distance to another hash: the number of
// bit positions in which the two differ. Comparing hashes of different
// lengths (or produced by different algorithms, which amounts to the
// same mistake) returns ErrLengthMismatch.
func (h Hash) Distance(other Hash) (int, error) {
	if len(h.bits) != len(other.bits) {
		return 0, ErrLengthMismatch
	}

	distance := 0
	for i := range h.bits {
		if h.bits[i] != other.bits[i] {
			distance++
		}
	}
	return distance, nil
}

// Similarity returns how similar two hashes are as a percentage, where
// 100 means identical and 0 means every bit differs.
func (h Hash) Similarity(other Hash) (float64, error) {
	distance, err := h.Distance(other)
	if err != nil {
		return 0, err
	}
	if len(h.bits) == 0 {
		return 100, nil
	}
	return 100 - float64(distance)/float64(len(h.bits))*100, nil
}
