package restriction

import (
	"fmt"

	"github.com/vectortile/roadaux/compress"
	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/format"
)

// EncodeCompressed wraps the plain section image produced by Encode with a
// one-byte compression-type tag and a compressed body, for transport over
// bandwidth-constrained links. The inner image's bytes are byte-for-byte
// identical to Encode's uncompressed output.
func EncodeCompressed(restrictions []Restriction, ct format.CompressionType) ([]byte, error) {
	plain, err := Encode(restrictions)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(ct, "restriction section")
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(plain)
	if err != nil {
		return nil, fmt.Errorf("restriction: compress: %w", err)
	}

	out := make([]byte, 0, 1+len(compressed))
	out = append(out, byte(ct))
	out = append(out, compressed...)

	return out, nil
}

// DecodeCompressed is the inverse of EncodeCompressed.
func DecodeCompressed(data []byte) ([]Restriction, error) {
	if len(data) < 1 {
		return nil, errs.ErrMalformedStream
	}

	ct := format.CompressionType(data[0])
	codec, err := compress.CreateCodec(ct, "restriction section")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrMalformedStream, err)
	}

	plain, err := codec.Decompress(data[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %v", errs.ErrMalformedStream, err)
	}

	return Decode(plain)
}
