package bitio

import "math/bits"

// WriteDelta Elias-delta-encodes x, which must be >= 1: it writes
// gamma(floor(log2 x)+1), then the low floor(log2 x) bits of x, most
// significant of that group first.
func WriteDelta(w *Writer, x uint32) {
	if x == 0 {
		panic("bitio: WriteDelta requires x >= 1")
	}

	n := bits.Len32(x) - 1 // floor(log2 x)
	WriteGamma(w, uint32(n+1))
	if n > 0 {
		w.WriteBits(x, n)
	}
}

// ReadDelta decodes a value previously written by WriteDelta.
func ReadDelta(r *Reader) (uint32, error) {
	nPlus1, err := ReadGamma(r)
	if err != nil {
		return 0, err
	}

	n := int(nPlus1) - 1
	if n == 0 {
		return 1, nil
	}

	low, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}

	return (uint32(1) << uint(n)) | low, nil
}
