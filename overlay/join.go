// Package overlay implements the key/value join that turns a decoded
// traffic-key vector and a decoded speed-group vector into a coloring
// map, plus the per-tile Overlay type that owns that mapping (spec
// sections 4.8 and 5).
package overlay

import (
	"fmt"

	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/traffic"
)

// Coloring maps a road segment to its current speed classification.
type Coloring map[traffic.RoadSegmentId]traffic.SpeedGroup

// Join performs the length-matched join of spec section 4.8: keys[i] maps
// to values[i]. A length mismatch is non-fatal to the process but fatal to
// the join: it returns errs.ErrLengthMismatch and a nil map, and the
// caller is expected to fall back to Unknown availability.
func Join(keys []traffic.RoadSegmentId, values []traffic.SpeedGroup) (Coloring, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", errs.ErrLengthMismatch, len(keys), len(values))
	}

	out := make(Coloring, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}

	return out, nil
}

// Combine performs the sparse combine of spec section 4.8: every key in
// keys gets an entry, taken from known when present and Unknown otherwise.
// known must be a subset of keys; a key in known absent from keys is a
// programming error and Combine panics, matching spec's "asserted" wording.
func Combine(keys []traffic.RoadSegmentId, known Coloring) Coloring {
	present := make(map[traffic.RoadSegmentId]struct{}, len(keys))
	out := make(Coloring, len(keys))

	for _, k := range keys {
		present[k] = struct{}{}
		if v, ok := known[k]; ok {
			out[k] = v
		} else {
			out[k] = traffic.Unknown
		}
	}

	for k := range known {
		if _, ok := present[k]; !ok {
			panic(fmt.Sprintf("overlay: Combine: known key %+v is not a subset of keys", k))
		}
	}

	return out
}
