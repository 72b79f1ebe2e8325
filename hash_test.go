package imagehash

import (
	"encoding/hex"
	"errors"
	"regexp"
	"testing"
)

func bitsFromString(t *testing.T, s string) []bool {
	t.Helper()
	bits := make([]bool, 0, len(s))
	for _, c := range s {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			t.Fatalf("invalid bit character %q", c)
		}
	}
	return bits
}

func TestHashBytes_MSBFirst(t *testing.T) {
	tests := []struct {
		name string
		bits string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"single set bit is MSB", "1", []byte{0x80}},
		{"single clear bit", "0", []byte{0x00}},
		{"alternating byte", "10100101", []byte{0xa5}},
		{"all set", "11111111", []byte{0xff}},
		{"partial byte padded in low bits", "111111111111", []byte{0xff, 0xf0}},
		{"two bytes", "1000000000000001", []byte{0x80, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHash(bitsFromString(t, tt.bits))
			got := h.Bytes()
			if len(got) != len(tt.want) {
				t.Fatalf("Bytes: got %d bytes, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("byte %d: got %#02x, want %#02x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHashString_LowercaseHex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]*$`)

	tests := []struct {
		name string
		bits string
		want string
	}{
		{"empty", "", ""},
		{"one byte", "10100101", "a5"},
		{"partial byte", "10111", "b8"},
		{"64 bits all set", "1111111111111111111111111111111111111111111111111111111111111111", "ffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHash(bitsFromString(t, tt.bits))
			got := h.String()
			if got != tt.want {
				t.Errorf("String: got %q, want %q", got, tt.want)
			}
			if !hexPattern.MatchString(got) {
				t.Errorf("String %q is not lowercase hex", got)
			}
			if wantLen := 2 * ((h.BitLen() + 7) / 8); len(got) != wantLen {
				t.Errorf("String length: got %d, want %d", len(got), wantLen)
			}
		})
	}
}

func TestHashString_RoundTrip(t *testing.T) {
	h := newHash(bitsFromString(t, "110100111000010111"))

	decoded, err := hex.DecodeString(h.String())
	if err != nil {
		t.Fatalf("decoding String output failed: %v", err)
	}

	packed := h.Bytes()
	if len(decoded) != len(packed) {
		t.Fatalf("round trip length: got %d bytes, want %d", len(decoded), len(packed))
	}
	for i := range packed {
		if decoded[i] != packed[i] {
			t.Errorf("byte %d: decoded %#02x, packed %#02x", i, decoded[i], packed[i])
		}
	}
}

func TestHashBits_ReturnsCopy(t *testing.T) {
	h := newHash(bitsFromString(t, "1010"))

	bits := h.Bits()
	bits[0] = false

	if got := h.Bits(); !got[0] {
		t.Error("mutating the slice returned by Bits changed the hash")
	}
}

func TestHashDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "10101010", "10101010", 0},
		{"one bit", "10101010", "10101011", 1},
		{"all bits", "1111", "0000", 4},
		{"empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newHash(bitsFromString(t, tt.a))
			b := newHash(bitsFromString(t, tt.b))

			got, err := a.Distance(b)
			if err != nil {
				t.Fatalf("Distance failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Distance: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHashDistance_LengthMismatch(t *testing.T) {
	a := newHash(bitsFromString(t, "1010"))
	b := newHash(bitsFromString(t, "10100000"))

	if _, err := a.Distance(b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Distance error: got %v, want ErrLengthMismatch", err)
	}
	if _, err := a.Similarity(b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Similarity error: got %v, want ErrLengthMismatch", err)
	}
}

func TestHashSimilarity(t *testing.T) {
	a := newHash(bitsFromString(t, "11110000"))
	b := newHash(bitsFromString(t, "11110011"))

	got, err := a.Similarity(b)
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if want := 75.0; got != want {
		t.Errorf("Similarity: got %v, want %v", got, want)
	}
}
