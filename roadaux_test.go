package roadaux

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectortile/roadaux/format"
	"github.com/vectortile/roadaux/restriction"
	"github.com/vectortile/roadaux/traffic"
)

func TestEncodeDecodeRestrictions_RoundTrip(t *testing.T) {
	in := []restriction.Restriction{
		{Type: restriction.No, Features: []uint32{10, 20}},
		{Type: restriction.Only, Features: []uint32{10, 30}},
	}

	data, err := EncodeRestrictions(in)
	require.NoError(t, err)

	out, err := DecodeRestrictions(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeDecodeRestrictionsCompressed_RoundTrip(t *testing.T) {
	in := []restriction.Restriction{{Type: restriction.No, Features: []uint32{1, 2, 3}}}

	data, err := EncodeRestrictionsCompressed(in, format.CompressionZstd)
	require.NoError(t, err)

	out, err := DecodeRestrictionsCompressed(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestTrafficAndJoin_EndToEnd(t *testing.T) {
	keys := []traffic.RoadSegmentId{
		{Fid: 7, Idx: 0, Dir: traffic.Forward},
		{Fid: 7, Idx: 1, Dir: traffic.Forward},
	}
	values := []traffic.SpeedGroup{traffic.Slow, traffic.Clear}

	keyBlob, err := EncodeTrafficKeys(keys)
	require.NoError(t, err)
	valueBlob, err := EncodeTrafficValues(values)
	require.NoError(t, err)

	decodedKeys, err := DecodeTrafficKeys(keyBlob)
	require.NoError(t, err)
	decodedValues, err := DecodeTrafficValues(valueBlob)
	require.NoError(t, err)

	coloring, err := JoinTraffic(decodedKeys, decodedValues)
	require.NoError(t, err)
	require.Equal(t, traffic.Slow, coloring[keys[0]])
	require.Equal(t, traffic.Clear, coloring[keys[1]])
}
