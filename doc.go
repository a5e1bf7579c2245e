/*
 * doc.go, part of Angstrom.
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

/*Package angstrom provides in-memory representations of molecules and molecular
trajectories, the coordinate transformations needed to build rotation
animations, and (in the render subpackage) a configuration contract for
producing images and videos of molecular structures through an external
renderer.


	**Capabilities**

    Molecule and Trajectory containers over gonum matrices, one row per atom.

    Geometric and mass-weighted centers, for a molecule or per trajectory frame.

    Mean-squared-displacement series for any atom/axis across frames.

    Quaternion-based rotation of coordinates about an arbitrary axis, and
	rotation-animation trajectories with linear or sine easing.

    Declarative render configuration (render subpackage): defaults, model
	presets, camera view planes, strict YAML merging, aggregate validation,
	and a compressed transport artifact handed to the external renderer.

    Trajectory analysis plots (trajplot subpackage).


Angstrom does not read or write structure files; molecules and trajectories
are built in memory from whatever source the caller already has. The external
renderer reads structure files on its own side of the process boundary.

A coordinate block is a gonum *mat.Dense with one row per atom and columns
x, y, z, in Angstroms.*/
package angstrom
