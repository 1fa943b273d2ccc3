package overlay

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vectortile/roadaux/traffic"
)

// TileID names one map tile's overlay within a batch reconciliation.
type TileID string

// Fetch retrieves the raw, still-encoded key and value blobs for a tile.
// Implementations are expected to perform their own I/O; BatchReconcile
// imposes no cancellation protocol beyond what the caller's context does
// (spec section 5).
type Fetch func(TileID) (keyBlob, valueBlob []byte, err error)

// BatchReconcile fetches and reconciles a set of independently-owned
// overlays concurrently. Each goroutine owns exactly one *Overlay and one
// disjoint pair of blobs, exploiting the parallelism guarantee of spec
// section 5 that encode/decode calls over disjoint buffers need no
// synchronization. The first reconciliation error is returned after all
// goroutines complete; overlays that succeeded keep their reconciled state
// regardless of a sibling's failure.
func BatchReconcile(overlays map[TileID]*Overlay, fetch Fetch) error {
	var g errgroup.Group

	for id, ov := range overlays {
		id, ov := id, ov
		g.Go(func() error {
			keyBlob, valueBlob, err := fetch(id)
			if err != nil {
				ov.MarkUnavailable(Unknown)
				return fmt.Errorf("overlay: fetch tile %s: %w", id, err)
			}

			keys, err := traffic.DecodeKeys(keyBlob)
			if err != nil {
				ov.MarkUnavailable(Unknown)
				return fmt.Errorf("overlay: decode keys for tile %s: %w", id, err)
			}

			values, err := traffic.DecodeValues(valueBlob)
			if err != nil {
				ov.MarkUnavailable(Unknown)
				return fmt.Errorf("overlay: decode values for tile %s: %w", id, err)
			}

			if err := ov.Reconcile(keys, values); err != nil {
				return fmt.Errorf("overlay: reconcile tile %s: %w", id, err)
			}

			return nil
		})
	}

	return g.Wait()
}
