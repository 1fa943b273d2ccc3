package bitio

import "github.com/vectortile/roadaux/errs"

// Reader reads bits LSB-first from a caller-owned byte slice.
//
// A Reader does not copy its input; the slice must outlive the Reader.
type Reader struct {
	data  []byte
	byteI int
	bitI  uint8 // next bit to read within data[byteI], 0 = LSB
}

// NewReader creates a Reader over data, starting at bit 0 of byte 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBits reads the next `width` bits and reconstructs the MSB-first field
// they encode, for 1 <= width <= 32 — the dual of Writer.WriteBits. Returns
// errs.ErrMalformedStream if the stream is exhausted before width bits are
// available.
func (r *Reader) ReadBits(width int) (uint32, error) {
	if width < 1 || width > 32 {
		panic("bitio: ReadBits width out of range")
	}

	var value uint32
	for i := 0; i < width; i++ {
		bit, err := r.popBit()
		if err != nil {
			return 0, err
		}
		value = (value << 1) | bit
	}

	return value, nil
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint32, error) {
	return r.popBit()
}

// popBit reads the next logical bit, LSB-first within the current byte.
func (r *Reader) popBit() (uint32, error) {
	if r.byteI >= len(r.data) {
		return 0, errs.ErrMalformedStream
	}

	bit := (r.data[r.byteI] >> r.bitI) & 1

	r.bitI++
	if r.bitI == 8 {
		r.bitI = 0
		r.byteI++
	}

	return uint32(bit), nil
}

// Exhausted reports whether every bit of the underlying byte slice has been
// consumed, including the zero-padding in a final partial byte. Callers use
// it to enforce the "fully consumed" invariant after decoding a section.
func (r *Reader) Exhausted() bool {
	if r.bitI != 0 {
		return r.byteI == len(r.data)-1
	}
	return r.byteI >= len(r.data)
}

// Remaining reports the number of whole bytes not yet started, not counting
// a partially-consumed current byte. Used for diagnostics only.
func (r *Reader) Remaining() int {
	n := len(r.data) - r.byteI
	if r.bitI != 0 {
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}

// BitsRemaining reports the number of unconsumed bits left in the stream.
// Decoders use this to reject an untrusted element count before allocating
// a slice sized from it, rather than trusting the count alone.
func (r *Reader) BitsRemaining() uint64 {
	total := len(r.data) * 8
	consumed := r.byteI*8 + int(r.bitI)
	if consumed >= total {
		return 0
	}
	return uint64(total - consumed)
}
