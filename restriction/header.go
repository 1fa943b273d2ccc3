package restriction

import (
	"encoding/binary"

	"github.com/vectortile/roadaux/errs"
)

// HeaderSize is the fixed size in bytes of a RestrictionSection header
// (spec section 3): version, reserved, no_count, only_count.
const HeaderSize = 12

// CurrentVersion is the only section version this package understands.
// Any other value is a hard decode error (spec section 4.4).
const CurrentVersion uint16 = 0

// Header is the fixed-size image at the start of a RestrictionSection.
type Header struct {
	Version   uint16
	Reserved  uint16
	NoCount   uint32
	OnlyCount uint32
}

// Bytes serializes the header into a new 12-byte little-endian image.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], h.Version)
	binary.LittleEndian.PutUint16(b[2:4], h.Reserved)
	binary.LittleEndian.PutUint32(b[4:8], h.NoCount)
	binary.LittleEndian.PutUint32(b[8:12], h.OnlyCount)
	return b
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrMalformedStream
	}

	h := Header{
		Version:   binary.LittleEndian.Uint16(data[0:2]),
		Reserved:  binary.LittleEndian.Uint16(data[2:4]),
		NoCount:   binary.LittleEndian.Uint32(data[4:8]),
		OnlyCount: binary.LittleEndian.Uint32(data[8:12]),
	}

	if h.Version != CurrentVersion {
		return Header{}, errs.ErrUnsupportedVersion
	}

	return h, nil
}
