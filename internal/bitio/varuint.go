package bitio

import (
	"encoding/binary"

	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/internal/pool"
)

// AppendVaruint appends value to buf using the standard 7-bit-group,
// high-bit-continuation, little-endian-group varint encoding.
//
// This is byte-identical to the format spec.md calls "varuint," and to the
// LEB128-style varint the standard library already implements — see
// DESIGN.md for why no bit-level reimplementation lives in this package.
func AppendVaruint(buf *pool.ByteBuffer, value uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], value)
	buf.MustWrite(tmp[:n])
}

// ReadVaruint reads a varuint starting at data[offset], returning the
// decoded value and the offset of the first unread byte.
func ReadVaruint(data []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset > len(data) {
		return 0, offset, errs.ErrMalformedStream
	}

	value, n := binary.Uvarint(data[offset:])
	if n <= 0 {
		return 0, offset, errs.ErrMalformedStream
	}

	return value, offset + n, nil
}
