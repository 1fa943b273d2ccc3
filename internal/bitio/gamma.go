package bitio

import (
	"math/bits"

	"github.com/vectortile/roadaux/errs"
)

// WriteGamma Elias-gamma-encodes x, which must be >= 1: it emits
// floor(log2 x) zero bits, then the (floor(log2 x)+1)-bit binary
// representation of x, most significant bit first.
func WriteGamma(w *Writer, x uint32) {
	if x == 0 {
		panic("bitio: WriteGamma requires x >= 1")
	}

	n := bits.Len32(x) - 1 // floor(log2 x)
	for i := 0; i < n; i++ {
		w.WriteBit(0)
	}
	w.WriteBits(x, n+1)
}

// ReadGamma decodes a value previously written by WriteGamma: it counts
// leading zero bits until a 1, then reads that many additional bits to
// reconstruct x. A stream that runs out of bits mid-code yields
// errs.ErrMalformedStream.
func ReadGamma(r *Reader) (uint32, error) {
	n := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		n++
		if n >= 32 {
			// No valid Elias-gamma code for a 32-bit value has this many
			// leading zero bits; treat as corruption rather than loop forever.
			return 0, errs.ErrMalformedStream
		}
	}

	value := uint32(1)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		value = (value << 1) | bit
	}

	return value, nil
}
