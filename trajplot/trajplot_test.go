/*
 * trajplot_test.go, part of Angstrom.
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

package trajplot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/caiyingchun/angstrom"
)

//a spinning single atom gives an easy, smooth drift/MSD trajectory.
func spinTrajectory(Te *testing.T) *angstrom.Trajectory {
	mol, err := angstrom.NewMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{3, 0, 0}))
	if err != nil {
		Te.Fatal(err)
	}
	traj, err := angstrom.RotationTrajectory(mol, r3.Vec{Z: 1}, math.Pi, 20, angstrom.Linear)
	if err != nil {
		Te.Fatal(err)
	}
	return traj
}

func TestMSDPlot(Te *testing.T) {
	traj := spinTrajectory(Te)
	series, err := traj.Series(0, 0)
	if err != nil {
		Te.Fatal(err)
	}
	msd := make([]float64, len(series))
	for i := range series {
		m, err := angstrom.MSD(series[:i+1], 0)
		if err != nil {
			Te.Fatal(err)
		}
		msd[i] = m
	}
	fmt.Println("MSD series:", msd)
	name := filepath.Join(Te.TempDir(), "msd")
	if err := MSDPlot(msd, "Test MSD", name); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("MSD plot file not written:", err)
	}
}

func TestDriftPlot(Te *testing.T) {
	traj := spinTrajectory(Te)
	centers, err := traj.Centers(false)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "drift")
	if err := DriftPlot(centers, "Test center drift", name); err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("drift plot file not written:", err)
	}
}
