package traffic

import (
	"fmt"

	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/internal/bitio"
	"github.com/vectortile/roadaux/internal/pool"
)

// CurrentKeyVersion is the only traffic-key section version this package
// understands.
const CurrentKeyVersion uint8 = 0

// featureGroup is the derived per-feature summary produced by the
// derivation pass of spec section 4.5.
type featureGroup struct {
	fid     uint32
	numSegs uint32
	oneWay  bool
}

// deriveGroups walks a sorted key vector and groups it by fid, computing
// each feature's segment count and one-way flag. keys must already be in
// canonical order (spec sections 4.5/4.7); this function does not sort.
func deriveGroups(keys []RoadSegmentId) ([]featureGroup, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var groups []featureGroup
	i := 0
	for i < len(keys) {
		fid := keys[i].Fid
		j := i
		twoWay := false
		for j < len(keys) && keys[j].Fid == fid {
			if keys[j].Dir == Backward {
				twoWay = true
			}
			j++
		}

		groupSize := j - i
		numDirs := 1
		if twoWay {
			numDirs = 2
		}
		if groupSize%numDirs != 0 {
			return nil, fmt.Errorf("%w: feature %d has group size %d not divisible by %d directions",
				errs.ErrInvariantViolation, fid, groupSize, numDirs)
		}

		groups = append(groups, featureGroup{
			fid:     fid,
			numSegs: uint32(groupSize / numDirs),
			oneWay:  !twoWay,
		})

		i = j
	}

	return groups, nil
}

// EncodeKeys serializes a canonical key vector into a TrafficKeySection
// image (spec sections 4.5 and 6). keys must already be sorted and in
// canonical per-feature layout; see deriveGroups.
func EncodeKeys(keys []RoadSegmentId) ([]byte, error) {
	groups, err := deriveGroups(keys)
	if err != nil {
		return nil, err
	}

	buf := pool.Get()
	defer pool.Put(buf)

	buf.MustWriteByte(CurrentKeyVersion)
	bitio.AppendVaruint(buf, uint64(len(groups)))

	w := bitio.NewWriterBuffer(buf)

	var prevFid uint32
	for _, g := range groups {
		bitio.WriteGamma(w, (g.fid-prevFid)+1)
		prevFid = g.fid
	}
	for _, g := range groups {
		bitio.WriteGamma(w, g.numSegs+1)
	}
	for _, g := range groups {
		if g.oneWay {
			w.WriteBit(1)
		} else {
			w.WriteBit(0)
		}
	}
	w.Flush()

	return append([]byte(nil), buf.Bytes()...), nil
}

// DecodeKeys is the inverse of EncodeKeys: it reconstructs the expanded,
// canonical key vector from a TrafficKeySection image.
func DecodeKeys(data []byte) ([]RoadSegmentId, error) {
	if len(data) < 1 {
		return nil, errs.ErrMalformedStream
	}
	if data[0] != CurrentKeyVersion {
		return nil, errs.ErrUnsupportedVersion
	}

	n, off, err := bitio.ReadVaruint(data, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: feature count: %v", errs.ErrMalformedStream, err)
	}

	r := bitio.NewReader(data[off:])

	// Every group costs at least one bit in each of the three passes below
	// (a minimal gamma code is one bit, as is a one-way flag), so a feature
	// count claiming more groups than the stream has bits for is corrupt.
	// Reject it here rather than trusting n to size the allocations below.
	const minBitsPerGroup = 3
	if n > r.BitsRemaining()/minBitsPerGroup {
		return nil, fmt.Errorf("%w: feature count %d exceeds available bits", errs.ErrMalformedStream, n)
	}

	fids := make([]uint32, n)
	var prevFid uint32
	for i := uint64(0); i < n; i++ {
		biasedDelta, err := bitio.ReadGamma(r)
		if err != nil {
			return nil, fmt.Errorf("%w: fid delta %d: %v", errs.ErrMalformedStream, i, err)
		}
		if biasedDelta == 0 {
			return nil, fmt.Errorf("%w: fid delta %d is zero-biased", errs.ErrMalformedStream, i)
		}
		fid := prevFid + (biasedDelta - 1)
		fids[i] = fid
		prevFid = fid
	}

	numSegs := make([]uint32, n)
	for i := uint64(0); i < n; i++ {
		biased, err := bitio.ReadGamma(r)
		if err != nil {
			return nil, fmt.Errorf("%w: num_segs %d: %v", errs.ErrMalformedStream, i, err)
		}
		if biased == 0 {
			return nil, fmt.Errorf("%w: num_segs %d is zero-biased", errs.ErrMalformedStream, i)
		}
		numSegs[i] = biased - 1
	}

	oneWay := make([]bool, n)
	for i := uint64(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("%w: one_way %d: %v", errs.ErrMalformedStream, i, err)
		}
		oneWay[i] = bit == 1
	}

	if !r.Exhausted() {
		return nil, fmt.Errorf("%w: trailing bytes after traffic key section", errs.ErrMalformedStream)
	}

	var out []RoadSegmentId
	for i := uint64(0); i < n; i++ {
		numDirs := 2
		if oneWay[i] {
			numDirs = 1
		}
		for j := uint32(0); j < numSegs[i]; j++ {
			for dir := 0; dir < numDirs; dir++ {
				out = append(out, RoadSegmentId{Fid: fids[i], Idx: uint16(j), Dir: Direction(dir)})
			}
		}
	}

	return out, nil
}
