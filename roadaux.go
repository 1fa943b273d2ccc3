// Package roadaux provides compact binary codecs for a vector-map
// routing/traffic subsystem's auxiliary road data: turn-restriction
// tables and traffic overlays.
//
// # Core Features
//
//   - Bit-packed, delta/zigzag/Elias-coded restriction and traffic-key
//     sections with a fixed 12-byte restriction header
//   - Deflate-wrapped traffic-value sections (coarse per-segment speed
//     classification)
//   - A pluggable compression registry (None, Deflate, S2, LZ4, Zstd) for
//     optional compressed restriction transport
//   - A key/value overlay join with length-matched and sparse-combine
//     modes, and a single-writer per-tile Overlay type
//   - An HTTPS remote-fetch client with retry and availability mapping
//
// # Basic Usage
//
// Encoding and decoding a restriction table:
//
//	import "github.com/vectortile/roadaux/restriction"
//
//	data, err := roadaux.EncodeRestrictions([]restriction.Restriction{
//	    {Type: restriction.No, Features: []uint32{10, 20}},
//	})
//	restrictions, err := roadaux.DecodeRestrictions(data)
//
// Encoding and decoding a traffic overlay:
//
//	keys, err := roadaux.EncodeTrafficKeys(segmentKeys)
//	values, err := roadaux.EncodeTrafficValues(speedGroups)
//	coloring, err := roadaux.JoinTraffic(decodedKeys, decodedValues)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// restriction, traffic, and overlay packages, mirroring their most common
// calls. For advanced usage — compressed restriction sections, tile key
// derivation, remote fetching, batch reconciliation — use those packages
// directly.
package roadaux

import (
	"github.com/vectortile/roadaux/format"
	"github.com/vectortile/roadaux/overlay"
	"github.com/vectortile/roadaux/restriction"
	"github.com/vectortile/roadaux/traffic"
)

// EncodeRestrictions serializes a sorted, No-then-Only-partitioned
// restriction vector into a RestrictionSection image.
func EncodeRestrictions(restrictions []restriction.Restriction) ([]byte, error) {
	return restriction.Encode(restrictions)
}

// DecodeRestrictions parses a RestrictionSection image back into a
// restriction vector.
func DecodeRestrictions(data []byte) ([]restriction.Restriction, error) {
	return restriction.Decode(data)
}

// EncodeRestrictionsCompressed is EncodeRestrictions plus a one-byte
// compression-type tag and compressed body, for bandwidth-constrained
// transport.
func EncodeRestrictionsCompressed(restrictions []restriction.Restriction, ct format.CompressionType) ([]byte, error) {
	return restriction.EncodeCompressed(restrictions, ct)
}

// DecodeRestrictionsCompressed is the inverse of
// EncodeRestrictionsCompressed.
func DecodeRestrictionsCompressed(data []byte) ([]restriction.Restriction, error) {
	return restriction.DecodeCompressed(data)
}

// EncodeTrafficKeys serializes a canonical road-segment key vector into a
// TrafficKeySection image.
func EncodeTrafficKeys(keys []traffic.RoadSegmentId) ([]byte, error) {
	return traffic.EncodeKeys(keys)
}

// DecodeTrafficKeys parses a TrafficKeySection image back into the
// expanded, canonical key vector.
func DecodeTrafficKeys(data []byte) ([]traffic.RoadSegmentId, error) {
	return traffic.DecodeKeys(data)
}

// EncodeTrafficValues builds and deflates a TrafficValueSection image from
// a speed-group vector.
func EncodeTrafficValues(values []traffic.SpeedGroup) ([]byte, error) {
	return traffic.EncodeValues(values)
}

// DecodeTrafficValues inflates and parses a TrafficValueSection image.
func DecodeTrafficValues(data []byte) ([]traffic.SpeedGroup, error) {
	return traffic.DecodeValues(data)
}

// JoinTraffic performs the length-matched key/value join that produces a
// tile's traffic coloring.
func JoinTraffic(keys []traffic.RoadSegmentId, values []traffic.SpeedGroup) (overlay.Coloring, error) {
	return overlay.Join(keys, values)
}
