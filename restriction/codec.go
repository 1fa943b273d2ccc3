package restriction

import (
	"fmt"

	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/internal/bitio"
)

// Encode serializes restrictions into a RestrictionSection image: a
// 12-byte header followed by the No-bucket then the Only-bucket, each
// bit-packed per spec section 4.4.
//
// restrictions must already be sorted and partitioned: every No entry
// before every Only entry, each satisfying Restriction.Validate. Encode
// returns errs.ErrInvariantViolation if an entry fails Validate or a No
// entry follows an Only entry; the order within a bucket is not checked.
func Encode(restrictions []Restriction) ([]byte, error) {
	firstOnly := len(restrictions)
	for i, r := range restrictions {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%w: restriction %d has %d features", err, i, len(r.Features))
		}
		if r.Type == Only && firstOnly == len(restrictions) {
			firstOnly = i
		}
		if r.Type == No && firstOnly != len(restrictions) {
			return nil, fmt.Errorf("%w: No restriction %d follows an Only restriction", errs.ErrInvariantViolation, i)
		}
	}

	noBucket := restrictions[:firstOnly]
	onlyBucket := restrictions[firstOnly:]

	h := Header{
		Version:   CurrentVersion,
		Reserved:  0,
		NoCount:   uint32(len(noBucket)),
		OnlyCount: uint32(len(onlyBucket)),
	}

	w := bitio.NewWriter()
	defer w.Close()

	encodeBucket(w, noBucket)
	encodeBucket(w, onlyBucket)
	body := w.Bytes()

	out := make([]byte, 0, HeaderSize+len(body))
	out = append(out, h.Bytes()...)
	out = append(out, body...)

	return out, nil
}

// encodeBucket implements the per-bucket encoder algorithm from spec
// section 4.4, chaining prevFirstFID across restrictions within the bucket.
// Both buckets of a section share one Writer so the final zero-pad happens
// exactly once, at the very end of the section body (spec section 6) — the
// No-bucket must not be flushed to a byte boundary before the Only-bucket
// starts, since Decode reads both from one continuous bit stream.
func encodeBucket(w *bitio.Writer, restrictions []Restriction) {
	var prevFirstFID uint32
	for _, r := range restrictions {
		prevFID := prevFirstFID

		bitio.WriteDelta(w, uint32(len(r.Features)-1))

		for _, f := range r.Features {
			delta := int32(f) - int32(prevFID)
			zz := bitio.ZigZagEncode32(delta)
			bitio.WriteDelta(w, zz+1)
			prevFID = f
		}

		prevFirstFID = r.Features[0]
	}
}

// Decode parses a RestrictionSection image back into a restriction vector,
// No-bucket first then Only-bucket, in encoded order (spec section 4.4).
func Decode(data []byte) ([]Restriction, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[HeaderSize:]
	r := bitio.NewReader(body)

	noBucket, err := decodeBucket(r, int(h.NoCount), No)
	if err != nil {
		return nil, err
	}
	onlyBucket, err := decodeBucket(r, int(h.OnlyCount), Only)
	if err != nil {
		return nil, err
	}

	if !r.Exhausted() {
		return nil, fmt.Errorf("%w: trailing bytes after restriction buckets", errs.ErrMalformedStream)
	}

	out := make([]Restriction, 0, len(noBucket)+len(onlyBucket))
	out = append(out, noBucket...)
	out = append(out, onlyBucket...)

	return out, nil
}

func decodeBucket(r *bitio.Reader, count int, typ Type) ([]Restriction, error) {
	// Every restriction costs at least one bit for its link-count delta plus
	// one bit per one of its (at least two) features, so a bucket count the
	// remaining stream cannot possibly back is corrupt. Reject it before
	// sizing an allocation from it.
	const minBitsPerRestriction = 3
	if count < 0 || uint64(count) > r.BitsRemaining()/minBitsPerRestriction {
		return nil, fmt.Errorf("%w: restriction count %d exceeds available bits", errs.ErrMalformedStream, count)
	}

	out := make([]Restriction, 0, count)

	var prevFirstFID uint32
	for i := 0; i < count; i++ {
		biasedLinkCount, err := bitio.ReadDelta(r)
		if err != nil {
			return nil, fmt.Errorf("%w: restriction %d link count: %v", errs.ErrMalformedStream, i, err)
		}
		if biasedLinkCount == 0 {
			return nil, fmt.Errorf("%w: restriction %d has zero link count", errs.ErrMalformedStream, i)
		}

		numFeatures := int(biasedLinkCount) + 1
		if numFeatures < 0 || uint64(numFeatures) > r.BitsRemaining() {
			return nil, fmt.Errorf("%w: restriction %d feature count %d exceeds available bits", errs.ErrMalformedStream, i, numFeatures)
		}
		features := make([]uint32, numFeatures)

		prevFID := prevFirstFID
		for j := 0; j < numFeatures; j++ {
			biasedDelta, err := bitio.ReadDelta(r)
			if err != nil {
				return nil, fmt.Errorf("%w: restriction %d feature %d: %v", errs.ErrMalformedStream, i, j, err)
			}
			if biasedDelta == 0 {
				return nil, fmt.Errorf("%w: restriction %d feature %d has zero-biased delta", errs.ErrMalformedStream, i, j)
			}

			delta := bitio.ZigZagDecode32(biasedDelta - 1)
			f := uint32(int32(prevFID) + delta)
			features[j] = f
			prevFID = f
		}

		out = append(out, Restriction{Type: typ, Features: features})
		prevFirstFID = features[0]
	}

	return out, nil
}
