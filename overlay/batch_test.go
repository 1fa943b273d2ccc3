package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectortile/roadaux/traffic"
)

func TestBatchReconcile_AllSucceed(t *testing.T) {
	keys := keys3()
	keyBlob, err := traffic.EncodeKeys(keys)
	require.NoError(t, err)

	values := []traffic.SpeedGroup{traffic.Slow, traffic.Clear, traffic.Closed}
	valueBlob, err := traffic.EncodeValues(values)
	require.NoError(t, err)

	overlays := map[TileID]*Overlay{
		"tile-a": New(),
		"tile-b": New(),
	}

	err = BatchReconcile(overlays, func(id TileID) ([]byte, []byte, error) {
		return keyBlob, valueBlob, nil
	})
	require.NoError(t, err)

	for _, ov := range overlays {
		require.Equal(t, IsAvailable, ov.Availability())
		require.Equal(t, traffic.Clear, ov.Coloring()[keys[1]])
	}
}

func TestBatchReconcile_PartialFailureLeavesOthersReconciled(t *testing.T) {
	keys := keys3()
	keyBlob, err := traffic.EncodeKeys(keys)
	require.NoError(t, err)

	values := []traffic.SpeedGroup{traffic.Slow, traffic.Clear, traffic.Closed}
	valueBlob, err := traffic.EncodeValues(values)
	require.NoError(t, err)

	overlays := map[TileID]*Overlay{
		"good": New(),
		"bad":  New(),
	}

	fetchErr := errors.New("network down")
	err = BatchReconcile(overlays, func(id TileID) ([]byte, []byte, error) {
		if id == "bad" {
			return nil, nil, fetchErr
		}
		return keyBlob, valueBlob, nil
	})
	require.Error(t, err)

	require.Equal(t, IsAvailable, overlays["good"].Availability())
	require.Equal(t, Unknown, overlays["bad"].Availability())
}
