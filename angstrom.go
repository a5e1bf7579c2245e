/*
 * angstrom.go, part of Angstrom.
 *
 * Copyright 2026 The Angstrom developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package angstrom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Molecule is a set of atoms, given as element symbols, with one cartesian
// coordinate block: an Nx3 matrix with one row per atom, in Angstroms.
// The fields are exported so callers can fill them from their own readers,
// but NewMolecule should be preferred, as it checks the dimensions.
type Molecule struct {
	Atoms  []string
	Coords *mat.Dense
}

// NewMolecule builds a Molecule from element symbols and a coordinate block.
// It returns an error if coords is nil or its shape doesn't match the atoms.
func NewMolecule(atoms []string, coords *mat.Dense) (*Molecule, error) {
	if coords == nil {
		return nil, CError{ErrNilCoordinates, []string{"NewMolecule"}}
	}
	r, c := coords.Dims()
	if c != 3 || r != len(atoms) {
		return nil, CError{fmt.Sprintf("%s: %dx%d coordinates for %d atoms", ErrShape, r, c, len(atoms)), []string{"NewMolecule"}}
	}
	return &Molecule{Atoms: atoms, Coords: coords}, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int { return len(M.Atoms) }

// Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	atoms := make([]string, len(M.Atoms))
	copy(atoms, M.Atoms)
	return &Molecule{Atoms: atoms, Coords: mat.DenseCopyOf(M.Coords)}
}

// Coord returns the position of the ith atom.
func (M *Molecule) Coord(i int) (r3.Vec, error) {
	if i < 0 || i >= M.Len() {
		return r3.Vec{}, CError{fmt.Sprintf("%s: %d", ErrAtomOutOfRange, i), []string{"Coord"}}
	}
	return r3.Vec{X: M.Coords.At(i, 0), Y: M.Coords.At(i, 1), Z: M.Coords.At(i, 2)}, nil
}

// Masses returns the mass of each atom, in the order of the Atoms slice.
// An element symbol missing from the mass table is an error.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, len(M.Atoms))
	for i, s := range M.Atoms {
		m, err := SymbolMass(s)
		if err != nil {
			return nil, errDecorate(err, "Masses")
		}
		masses[i] = m
	}
	return masses, nil
}

// Center returns the geometric center of the molecule or, if mass is true,
// its center of mass.
func (M *Molecule) Center(mass bool) (r3.Vec, error) {
	if M == nil || M.Coords == nil {
		return r3.Vec{}, CError{ErrNilCoordinates, []string{"Center"}}
	}
	if M.Len() == 0 {
		return r3.Vec{}, CError{ErrNoAtoms, []string{"Center"}}
	}
	var weights []float64
	if mass {
		var err error
		weights, err = M.Masses()
		if err != nil {
			return r3.Vec{}, errDecorate(err, "Center")
		}
	}
	var c [3]float64
	for j := 0; j < 3; j++ {
		c[j] = stat.Mean(mat.Col(nil, j, M.Coords), weights)
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Translate displaces every atom of the molecule by v, in place.
func (M *Molecule) Translate(v r3.Vec) {
	if M == nil || M.Coords == nil {
		return
	}
	rows, _ := M.Coords.Dims()
	for i := 0; i < rows; i++ {
		M.Coords.Set(i, 0, M.Coords.At(i, 0)+v.X)
		M.Coords.Set(i, 1, M.Coords.At(i, 1)+v.Y)
		M.Coords.Set(i, 2, M.Coords.At(i, 2)+v.Z)
	}
}
