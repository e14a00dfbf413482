package lattice

import "fmt"

// Supercell is a sublattice S = U·M of a unit lattice, carrying both the
// integer transformation and the resulting real basis. It implements
// Lattice itself, so a supercell can in turn be enumerated over.
type Supercell struct {
	unit      Lattice
	transform IntMatrix
	cols      RealMatrix
}

// MakeSupercell constructs the supercell of unit described by the
// integer transformation m. It fails with ErrSingular if det(m) == 0,
// since a singular transform does not describe a sublattice.
func MakeSupercell(unit Lattice, m IntMatrix) (*Supercell, error) {
	if m.Det() == 0 {
		return nil, fmt.Errorf("lattice: MakeSupercell: %w", ErrSingular)
	}
	return &Supercell{
		unit:      unit,
		transform: m,
		cols:      unit.ColumnMatrix().Mul(m.Real()),
	}, nil
}

// Unit returns the lattice this supercell tiles.
func (s *Supercell) Unit() Lattice { return s.unit }

// Transform returns the integer transformation M with S = U·M.
func (s *Supercell) Transform() IntMatrix { return s.transform }

// Volume returns |det M|, the ratio of the supercell's primitive cell
// volume to the unit's.
func (s *Supercell) Volume() int {
	d := s.transform.Det()
	if d < 0 {
		return -d
	}
	return d
}

// ColumnMatrix returns the supercell's basis column matrix U·M.
func (s *Supercell) ColumnMatrix() RealMatrix { return s.cols }
