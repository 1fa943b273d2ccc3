package tilefeed

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectortile/roadaux/traffic"
)

type fakeFeature struct {
	points int
	road   bool
	oneWay bool
}

func (f fakeFeature) Points() int { return f.points }

type fakeIterator struct {
	fids     []uint32
	features []fakeFeature
	i        int
}

func (it *fakeIterator) Next() (Feature, uint32, bool) {
	if it.i >= len(it.fids) {
		return nil, 0, false
	}
	f := it.features[it.i]
	fid := it.fids[it.i]
	it.i++
	return f, fid, true
}

type fakeModel struct{}

func (fakeModel) IsRoad(f Feature) bool   { return f.(fakeFeature).road }
func (fakeModel) IsOneWay(f Feature) bool { return f.(fakeFeature).oneWay }

func TestDeriveKeys_OneWayAndTwoWay(t *testing.T) {
	it := &fakeIterator{
		fids: []uint32{4, 7},
		features: []fakeFeature{
			{points: 2, road: true, oneWay: false},
			{points: 4, road: true, oneWay: true},
		},
	}

	keys, err := DeriveKeys(it, fakeModel{})
	require.NoError(t, err)

	want := []traffic.RoadSegmentId{
		{Fid: 4, Idx: 0, Dir: traffic.Forward},
		{Fid: 4, Idx: 0, Dir: traffic.Backward},
		{Fid: 7, Idx: 0, Dir: traffic.Forward},
		{Fid: 7, Idx: 1, Dir: traffic.Forward},
		{Fid: 7, Idx: 2, Dir: traffic.Forward},
	}
	require.Equal(t, want, keys)
}

func TestDeriveKeys_SkipsNonRoadFeatures(t *testing.T) {
	it := &fakeIterator{
		fids: []uint32{1, 2},
		features: []fakeFeature{
			{points: 3, road: false, oneWay: true},
			{points: 2, road: true, oneWay: true},
		},
	}

	keys, err := DeriveKeys(it, fakeModel{})
	require.NoError(t, err)
	require.Equal(t, []traffic.RoadSegmentId{{Fid: 2, Idx: 0, Dir: traffic.Forward}}, keys)
}

func TestDeriveKeys_Empty(t *testing.T) {
	it := &fakeIterator{}
	keys, err := DeriveKeys(it, fakeModel{})
	require.NoError(t, err)
	require.Empty(t, keys)
}

func TestDeriveKeys_RoundTripsThroughKeyCodec(t *testing.T) {
	it := &fakeIterator{
		fids: []uint32{4, 7},
		features: []fakeFeature{
			{points: 2, road: true, oneWay: false},
			{points: 4, road: true, oneWay: true},
		},
	}

	keys, err := DeriveKeys(it, fakeModel{})
	require.NoError(t, err)

	data, err := traffic.EncodeKeys(keys)
	require.NoError(t, err)

	out, err := traffic.DecodeKeys(data)
	require.NoError(t, err)
	require.Equal(t, keys, out)
}
