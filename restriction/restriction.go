// Package restriction implements the turn-restriction table codec: the
// Restriction record, the 12-byte section header, and the two-bucket
// bit-packed encoder/decoder (spec sections 3 and 4.4).
package restriction

import "github.com/vectortile/roadaux/errs"

// InvalidFeatureID is the sentinel feature identifier reserved by the wire
// format; it must never appear in a valid restriction.
const InvalidFeatureID uint32 = 1<<32 - 1

// Type classifies a Restriction as forbidding or mandating traversal of its
// feature chain.
type Type uint8

const (
	// No means traversing the chain is forbidden.
	No Type = 0
	// Only means the chain is the only permitted continuation.
	Only Type = 1
)

func (t Type) String() string {
	switch t {
	case No:
		return "No"
	case Only:
		return "Only"
	default:
		return "Unknown"
	}
}

// Restriction is a turn rule over an ordered chain of at least two feature
// identifiers. Order is semantic: it is the direction of traversal.
type Restriction struct {
	Type     Type
	Features []uint32
}

// Validate checks the invariants from spec section 3: at least two
// features, and no occurrence of the reserved sentinel identifier.
func (r Restriction) Validate() error {
	if len(r.Features) < 2 {
		return errs.ErrInvariantViolation
	}
	for _, f := range r.Features {
		if f == InvalidFeatureID {
			return errs.ErrInvariantViolation
		}
	}
	return nil
}

// Less implements the total order from spec section 3: lexicographic by
// (Type, Features), with No < Only.
func (r Restriction) Less(o Restriction) bool {
	if r.Type != o.Type {
		return r.Type < o.Type
	}
	for i := 0; i < len(r.Features) && i < len(o.Features); i++ {
		if r.Features[i] != o.Features[i] {
			return r.Features[i] < o.Features[i]
		}
	}
	return len(r.Features) < len(o.Features)
}
