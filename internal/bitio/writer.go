// Package bitio implements the LSB-first bit-level writer/reader and the
// integer codecs (varuint, Elias-gamma, Elias-delta, zigzag) that the
// restriction and traffic-key codecs are built on.
//
// Bit order is fixed: bit 0 of the first bit written is the least
// significant bit of the first output byte. This is not a convention that
// can be swapped for MSB-first without producing an incompatible wire
// format.
package bitio

import "github.com/vectortile/roadaux/internal/pool"

// Writer accumulates bits LSB-first into a caller-visible byte buffer.
//
// A Writer is single-use: create one per section body being encoded, write
// the bits, then call Bytes to retrieve the flushed, zero-padded result.
type Writer struct {
	buf     *pool.ByteBuffer
	owned   bool
	cur     byte
	nBits   uint8 // number of valid bits already placed in cur, 0..7
}

// NewWriter creates a Writer backed by a pooled buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.Get(), owned: true}
}

// NewWriterBuffer creates a Writer that appends into a caller-supplied
// buffer instead of a pooled one. Used when a section header has already
// been written into the same output buffer ahead of the bit-packed body.
func NewWriterBuffer(buf *pool.ByteBuffer) *Writer {
	return &Writer{buf: buf}
}

// WriteBits appends the `width`-bit field of value, most-significant bit of
// the field first, for 1 <= width <= 32. The resulting sequence of
// individual bits is then packed into bytes LSB-first: the first bit
// written lands in bit 0 of the current output byte, matching the bit
// writer contract in spec section 4.1.
func (w *Writer) WriteBits(value uint32, width int) {
	if width < 1 || width > 32 {
		panic("bitio: WriteBits width out of range")
	}

	for i := width - 1; i >= 0; i-- {
		w.pushBit(byte((value >> uint(i)) & 1))
	}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit uint32) {
	w.pushBit(byte(bit & 1))
}

// pushBit places one logical bit into the next available LSB-first
// position of the current output byte.
func (w *Writer) pushBit(bit byte) {
	w.cur |= bit << w.nBits
	w.nBits++
	if w.nBits == 8 {
		w.buf.MustWriteByte(w.cur)
		w.cur = 0
		w.nBits = 0
	}
}

// Flush zero-pads and emits any partial trailing byte. It is idempotent and
// safe to call multiple times; callers normally only need it via Bytes or
// Close.
func (w *Writer) Flush() {
	if w.nBits > 0 {
		w.buf.MustWriteByte(w.cur)
		w.cur = 0
		w.nBits = 0
	}
}

// Bytes flushes any pending partial byte and returns the accumulated,
// zero-padded bit stream.
func (w *Writer) Bytes() []byte {
	w.Flush()
	return w.buf.Bytes()
}

// Close flushes the writer and, if it owns a pooled buffer, releases it.
// Close must be the last call made on a Writer created with NewWriter; the
// byte slice previously returned by Bytes must not be used afterward.
func (w *Writer) Close() {
	w.Flush()
	if w.owned {
		pool.Put(w.buf)
		w.buf = nil
	}
}
