package traffic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeKeys_Empty(t *testing.T) {
	data, err := EncodeKeys(nil)
	require.NoError(t, err)

	out, err := DecodeKeys(data)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncodeDecodeKeys_SingleOneWayThreeSegments(t *testing.T) {
	in := []RoadSegmentId{
		{Fid: 7, Idx: 0, Dir: Forward},
		{Fid: 7, Idx: 1, Dir: Forward},
		{Fid: 7, Idx: 2, Dir: Forward},
	}

	data, err := EncodeKeys(in)
	require.NoError(t, err)
	require.Equal(t, byte(0), data[0])

	out, err := DecodeKeys(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeDecodeKeys_TwoWayFeature(t *testing.T) {
	in := []RoadSegmentId{
		{Fid: 4, Idx: 0, Dir: Forward},
		{Fid: 4, Idx: 0, Dir: Backward},
	}

	data, err := EncodeKeys(in)
	require.NoError(t, err)

	out, err := DecodeKeys(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeDecodeKeys_MultipleFeatures(t *testing.T) {
	in := []RoadSegmentId{
		{Fid: 1, Idx: 0, Dir: Forward},
		{Fid: 1, Idx: 1, Dir: Forward},
		{Fid: 4, Idx: 0, Dir: Forward},
		{Fid: 4, Idx: 0, Dir: Backward},
		{Fid: 4, Idx: 1, Dir: Forward},
		{Fid: 4, Idx: 1, Dir: Backward},
		{Fid: 1000, Idx: 0, Dir: Forward},
	}

	data, err := EncodeKeys(in)
	require.NoError(t, err)

	out, err := DecodeKeys(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeKeys_RejectsUnevenGroupSize(t *testing.T) {
	in := []RoadSegmentId{
		{Fid: 4, Idx: 0, Dir: Forward},
		{Fid: 4, Idx: 0, Dir: Backward},
		{Fid: 4, Idx: 1, Dir: Forward},
	}

	_, err := EncodeKeys(in)
	require.Error(t, err)
}

func TestDecodeKeys_RejectsUnsupportedVersion(t *testing.T) {
	_, err := DecodeKeys([]byte{1, 0})
	require.Error(t, err)
}

func TestDecodeKeys_RejectsTruncated(t *testing.T) {
	_, err := DecodeKeys([]byte{})
	require.Error(t, err)
}

func TestDecodeKeys_RejectsTrailingBytes(t *testing.T) {
	in := []RoadSegmentId{
		{Fid: 7, Idx: 0, Dir: Forward},
		{Fid: 7, Idx: 1, Dir: Forward},
	}
	data, err := EncodeKeys(in)
	require.NoError(t, err)

	data = append(data, 0xFF, 0xFF)
	_, err = DecodeKeys(data)
	require.Error(t, err)
}

func TestRoadSegmentId_Less(t *testing.T) {
	a := RoadSegmentId{Fid: 1, Idx: 0, Dir: Forward}
	b := RoadSegmentId{Fid: 1, Idx: 0, Dir: Backward}
	c := RoadSegmentId{Fid: 2, Idx: 0, Dir: Forward}

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, c.Less(a))
}
