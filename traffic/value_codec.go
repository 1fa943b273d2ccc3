package traffic

import (
	"fmt"

	"github.com/vectortile/roadaux/compress"
	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/format"
	"github.com/vectortile/roadaux/internal/bitio"
	"github.com/vectortile/roadaux/internal/pool"
)

// CurrentValueVersion is the only traffic-value section version this
// package understands.
const CurrentValueVersion uint8 = 0

// speedGroupWidth is the fixed bit width of a packed SpeedGroup ordinal
// (spec section 4.6).
const speedGroupWidth = 3

// EncodeValues builds the inner buffer (version, count, packed 3-bit
// ordinals) and deflates it, producing the on-disk TrafficValueSection
// image (spec section 4.6).
func EncodeValues(values []SpeedGroup) ([]byte, error) {
	for i, v := range values {
		if !v.Valid() {
			return nil, fmt.Errorf("%w: value %d has ordinal %d out of 3-bit range", errs.ErrInvariantViolation, i, v)
		}
	}

	buf := pool.Get()
	defer pool.Put(buf)

	buf.MustWriteByte(CurrentValueVersion)
	bitio.AppendVaruint(buf, uint64(len(values)))

	w := bitio.NewWriterBuffer(buf)
	for _, v := range values {
		w.WriteBits(uint32(v), speedGroupWidth)
	}
	w.Flush()

	inner := buf.Bytes()

	codec, err := compress.GetCodec(format.CompressionDeflate)
	if err != nil {
		return nil, err
	}

	out, err := codec.Compress(inner)
	if err != nil {
		return nil, fmt.Errorf("traffic: compress values: %w", err)
	}

	return out, nil
}

// DecodeValues inflates data and parses the inner (version, count,
// packed ordinals) layout, returning the decoded SpeedGroup vector.
func DecodeValues(data []byte) ([]SpeedGroup, error) {
	codec, err := compress.GetCodec(format.CompressionDeflate)
	if err != nil {
		return nil, err
	}

	inner, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: inflate traffic values: %v", errs.ErrMalformedStream, err)
	}

	if len(inner) < 1 {
		return nil, errs.ErrMalformedStream
	}
	if inner[0] != CurrentValueVersion {
		return nil, errs.ErrUnsupportedVersion
	}

	n, off, err := bitio.ReadVaruint(inner, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: value count: %v", errs.ErrMalformedStream, err)
	}

	r := bitio.NewReader(inner[off:])

	// Each value is a fixed speedGroupWidth bits; reject a count the
	// (already-inflated) stream cannot possibly back before allocating.
	if n > r.BitsRemaining()/speedGroupWidth {
		return nil, fmt.Errorf("%w: value count %d exceeds available bits", errs.ErrMalformedStream, n)
	}

	out := make([]SpeedGroup, n)
	for i := uint64(0); i < n; i++ {
		bits, err := r.ReadBits(speedGroupWidth)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %v", errs.ErrMalformedStream, i, err)
		}
		out[i] = SpeedGroup(bits)
	}

	if !r.Exhausted() {
		return nil, fmt.Errorf("%w: trailing bytes after traffic value section", errs.ErrMalformedStream)
	}

	return out, nil
}
