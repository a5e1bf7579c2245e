/*
 * trajectory.go, part of Angstrom.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Trajectory is a sequence of coordinate frames over a fixed set of atoms.
// Every frame is an Nx3 coordinate block for the same N atoms.
type Trajectory struct {
	Atoms  []string
	Coords []*mat.Dense
}

// NewTrajectory returns an empty trajectory over the given atoms.
// Frames are added with AppendFrame.
func NewTrajectory(atoms []string) *Trajectory {
	return &Trajectory{Atoms: atoms}
}

// Len returns the number of atoms per frame.
func (T *Trajectory) Len() int { return len(T.Atoms) }

// Frames returns the number of frames currently in the trajectory.
func (T *Trajectory) Frames() int { return len(T.Coords) }

// AppendFrame adds a coordinate block as the last frame of the trajectory.
// The block is kept, not copied, so the caller must not modify it afterwards.
func (T *Trajectory) AppendFrame(coords *mat.Dense) error {
	if coords == nil {
		return CError{ErrNilCoordinates, []string{"AppendFrame"}}
	}
	r, c := coords.Dims()
	if c != 3 || r != len(T.Atoms) {
		return CError{fmt.Sprintf("%s: %dx%d coordinates for %d atoms", ErrShape, r, c, len(T.Atoms)), []string{"AppendFrame"}}
	}
	T.Coords = append(T.Coords, coords)
	return nil
}

// Frame returns the ith frame as a Molecule. The returned molecule shares
// storage with the trajectory; Copy it before modifying.
func (T *Trajectory) Frame(i int) (*Molecule, error) {
	if i < 0 || i >= len(T.Coords) {
		return nil, CError{fmt.Sprintf("%s: %d of %d", ErrFrameOutOfRange, i, len(T.Coords)), []string{"Frame"}}
	}
	return &Molecule{Atoms: T.Atoms, Coords: T.Coords[i]}, nil
}

// Centers returns the geometric (or mass-weighted, if mass is true) center
// of every frame, in frame order.
func (T *Trajectory) Centers(mass bool) ([]r3.Vec, error) {
	centers := make([]r3.Vec, 0, len(T.Coords))
	for i := range T.Coords {
		mol := Molecule{Atoms: T.Atoms, Coords: T.Coords[i]}
		c, err := mol.Center(mass)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Centers: frame %d", i))
		}
		centers = append(centers, c)
	}
	return centers, nil
}

// Series extracts the coordinate of one atom along one axis (0, 1 or 2 for
// x, y, z) across all frames, e.g. for a mean-squared-displacement analysis.
func (T *Trajectory) Series(atom, axis int) ([]float64, error) {
	if atom < 0 || atom >= len(T.Atoms) {
		return nil, CError{fmt.Sprintf("%s: %d", ErrAtomOutOfRange, atom), []string{"Series"}}
	}
	if axis < 0 || axis > 2 {
		return nil, CError{fmt.Sprintf("axis must be 0, 1 or 2, not %d", axis), []string{"Series"}}
	}
	s := make([]float64, len(T.Coords))
	for i, frame := range T.Coords {
		s[i] = frame.At(atom, axis)
	}
	return s, nil
}

// MSD returns the mean squared displacement of a coordinate series with
// respect to its value at the reference frame.
func MSD(series []float64, reference int) (float64, error) {
	if len(series) == 0 {
		return 0, CError{"empty coordinate series", []string{"MSD"}}
	}
	if reference < 0 || reference >= len(series) {
		return 0, CError{fmt.Sprintf("%s: %d of %d", ErrFrameOutOfRange, reference, len(series)), []string{"MSD"}}
	}
	d := make([]float64, len(series))
	copy(d, series)
	floats.AddConst(-series[reference], d)
	floats.Mul(d, d)
	return stat.Mean(d, nil), nil
}
