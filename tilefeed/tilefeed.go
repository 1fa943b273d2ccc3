// Package tilefeed derives canonical traffic-segment keys from a map-tile
// feature scan (spec section 4.7). It depends only on small collaborator
// interfaces; the tile container format itself is out of scope.
package tilefeed

import "github.com/vectortile/roadaux/traffic"

// Feature is the minimal view tilefeed needs of a road feature: the number
// of points in its polyline. Callers adapt their own tile-parser type to
// this interface rather than tilefeed depending on a concrete format.
type Feature interface {
	Points() int
}

// FeatureIterator yields a tile's features in ascending fid order.
// Next returns ok=false once exhausted.
type FeatureIterator interface {
	Next() (feature Feature, fid uint32, ok bool)
}

// RoadModel classifies features for key derivation. Both predicates are
// external inputs supplied by the caller's map-data model.
type RoadModel interface {
	IsRoad(f Feature) bool
	IsOneWay(f Feature) bool
}

// DeriveKeys walks it in ascending fid order and, for each road feature,
// emits RoadSegmentId keys for every directed segment of its polyline
// (spec section 4.7). The result is sorted by construction since it is
// already ascending by fid and, within a feature, ascending by (idx, dir).
func DeriveKeys(it FeatureIterator, model RoadModel) ([]traffic.RoadSegmentId, error) {
	var keys []traffic.RoadSegmentId

	for {
		feature, fid, ok := it.Next()
		if !ok {
			break
		}
		if !model.IsRoad(feature) {
			continue
		}

		numDirs := 2
		if model.IsOneWay(feature) {
			numDirs = 1
		}

		segments := feature.Points() - 1
		for i := 0; i < segments; i++ {
			for dir := 0; dir < numDirs; dir++ {
				keys = append(keys, traffic.RoadSegmentId{
					Fid: fid,
					Idx: uint16(i),
					Dir: traffic.Direction(dir),
				})
			}
		}
	}

	return keys, nil
}
