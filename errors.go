/*
 * errors.go, part of Angstrom.
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

// Error is the interface satisfied by the errors of Angstrom and its
// subpackages.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds the given string to the decoration slice of the error and returns the resulting slice. If given an empty string it just returns the current slice, without adding the empty string to it. The decoration slice should contain the names of the functions in the calling stack, plus, for each function, any relevant extra information in the format "FunctionName: Extra info".
}

// CError is the concrete error type of the root package. It fullfills
// the Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the given string to the decoration slice of the error
// and returns the slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err fullfills the Error interface and adds
// the caller's name to its decoration slice. It panics on a non-Error
// error, so it must only be used on errors produced by this library.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type used for the text of panics raised on programming
// errors (as opposed to runtime conditions, which get regular errors).
// It satisfies the error interface anyway, in case a recovering caller
// wants to treat it as one.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// Messages for recurring error conditions.
const (
	ErrNilCoordinates  = "nil coordinates given"
	ErrNilMolecule     = "nil molecule given"
	ErrShape           = "coordinate block must have 3 columns and one row per atom"
	ErrNoAtoms         = "molecule has no atoms"
	ErrUnknownElement  = "element symbol not in the mass table"
	ErrFrameOutOfRange = "frame index out of range"
	ErrAtomOutOfRange  = "atom index out of range"
)
