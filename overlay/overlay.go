package overlay

import "github.com/vectortile/roadaux/traffic"

// Overlay is the traffic coloring owned by one map tile. Its availability
// and coloring fields are mutated only by Reconcile and MarkUnavailable,
// called by a single owner: readers must either hold an immutable snapshot of
// Coloring() or arrange their own synchronization with the owner.
type Overlay struct {
	availability Availability
	coloring     Coloring
}

// New returns an Overlay with no data yet reconciled.
func New() *Overlay {
	return &Overlay{availability: NoData, coloring: Coloring{}}
}

// Availability returns the overlay's current availability state.
func (o *Overlay) Availability() Availability {
	return o.availability
}

// Coloring returns the overlay's current coloring map. The returned map is
// not copied; callers must treat it as a read-only snapshot.
func (o *Overlay) Coloring() Coloring {
	return o.coloring
}

// Reconcile rebuilds the overlay wholesale from a fresh key/value decode,
// per spec section 3's lifecycle rule ("rebuilt wholesale whenever a new
// value payload arrives"). On a length mismatch it sets availability to
// Unknown and empties the coloring rather than returning a partial result,
// matching the all-or-nothing guarantee of spec section 7.
func (o *Overlay) Reconcile(keys []traffic.RoadSegmentId, values []traffic.SpeedGroup) error {
	coloring, err := Join(keys, values)
	if err != nil {
		o.availability = Unknown
		o.coloring = Coloring{}
		return err
	}

	o.availability = IsAvailable
	o.coloring = coloring
	return nil
}

// MarkUnavailable sets the overlay's availability without touching its
// existing coloring, for use when a fetch or a key/value decode failed
// before Reconcile could be called.
func (o *Overlay) MarkUnavailable(a Availability) {
	o.availability = a
}
