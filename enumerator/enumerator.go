package enumerator

import (
	"github.com/pkg/errors"

	"github.com/solidnomad/supercell/lattice"
)

// Enumerator holds the immutable context of a supercell enumeration:
// the unit lattice, its point group, the precomputed integer
// representations of every group operation, and the half-open volume
// range [beginVolume, endVolume). It vends iterators; it never mutates
// after construction, so any number of iterators may reference it
// concurrently.
type Enumerator struct {
	unit    lattice.Lattice
	group   lattice.PointGroup
	ops     []lattice.IntMatrix
	begin   int
	end     int
	metrics Metrics
}

// New constructs an Enumerator over the unit lattice for volumes in
// [beginVolume, endVolume). A nil group derives the point group from
// the lattice at the configured tolerance (WithTolerance); a non-nil
// group is used verbatim.
//
// Volumes below 1 are clamped up to 1. beginVolume > endVolume (after
// clamping) fails with ErrInvalidArgument, as do a nil lattice and an
// explicitly supplied empty group.
func New(unit lattice.Lattice, group lattice.PointGroup, beginVolume, endVolume int, opts ...Option) (*Enumerator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if unit == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "enumerator.New: nil unit lattice")
	}
	if beginVolume < 1 {
		beginVolume = 1
	}
	if endVolume < 1 {
		endVolume = 1
	}
	if beginVolume > endVolume {
		return nil, errors.Wrapf(ErrInvalidArgument, "enumerator.New: beginVolume %d > endVolume %d", beginVolume, endVolume)
	}

	if group == nil {
		derived, err := lattice.DerivePointGroup(unit, o.tolerance)
		if err != nil {
			return nil, errors.Wrap(err, "enumerator.New: deriving point group")
		}
		group = derived
	}
	if group.Size() == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "enumerator.New: empty point group")
	}

	ops, err := lattice.IntegerReps(unit, group)
	if err != nil {
		return nil, errors.Wrap(err, "enumerator.New: embedding point group")
	}

	return &Enumerator{
		unit:    unit,
		group:   group,
		ops:     ops,
		begin:   beginVolume,
		end:     endVolume,
		metrics: o.metrics,
	}, nil
}

// Unit returns the unit lattice being tiled.
func (e *Enumerator) Unit() lattice.Lattice { return e.unit }

// PointGroup returns the point group in use.
func (e *Enumerator) PointGroup() lattice.PointGroup { return e.group }

// BeginVolume returns the first volume iterated over.
func (e *Enumerator) BeginVolume() int { return e.begin }

// EndVolume returns the past-the-last volume.
func (e *Enumerator) EndVolume() int { return e.end }

// Begin returns an iterator positioned on the first canonical matrix at
// BeginVolume.
func (e *Enumerator) Begin() *UniqueHnfIterator {
	return e.IteratorAt(e.begin)
}

// End returns the past-the-end sentinel iterator. It carries
// (EndVolume, diag(1,1,EndVolume)), which is exactly the state a
// walking iterator assumes when it exhausts the range, so Equal against
// End is the loop-termination test.
func (e *Enumerator) End() *UniqueHnfIterator {
	return &UniqueHnfIterator{
		enum: e,
		vol:  e.end,
		m:    diag(1, 1, e.end),
		div:  newDivisorCache(),
	}
}

// IteratorAt returns an iterator positioned on the first canonical
// matrix at volume v or later. Volumes below 1 are clamped up to 1.
func (e *Enumerator) IteratorAt(v int) *UniqueHnfIterator {
	if v < 1 {
		v = 1
	}

	it := &UniqueHnfIterator{
		enum:  e,
		vol:   v,
		m:     diag(1, 1, v),
		div:   newDivisorCache(),
		dirty: true,
	}
	if it.vol < e.end && !it.canonical() {
		it.Advance()
	}

	return it
}
