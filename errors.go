/*
 * errors.go, part of chemkin.
 *
 * Copyright 2017 The chemkin authors
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

package chemkin

import "fmt"

//errDecorate asserts that err implements chemkin.Error and decorates it with
//the caller's name before returning it. Calling it on any other error panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// DomainError reports a non-physical value found while evaluating rates: a
// negative rate coefficient, concentration or stoichiometric exponent.
// Quantity names the offending quantity, Species and Reaction the indexes
// involved (-1 when not applicable), and Value the value found.
type DomainError struct {
	Quantity string
	Species  int
	Reaction int
	Value    float64
	deco     []string
}

func (err *DomainError) Error() string {
	switch {
	case err.Species < 0:
		return fmt.Sprintf("chemkin: %s = %.16e in reaction %d: negative values are prohibited", err.Quantity, err.Value, err.Reaction)
	case err.Reaction < 0:
		return fmt.Sprintf("chemkin: %s = %.16e for species %d: negative values are prohibited", err.Quantity, err.Value, err.Species)
	}
	return fmt.Sprintf("chemkin: %s = %.16e for species %d in reaction %d: negative values are prohibited", err.Quantity, err.Value, err.Species, err.Reaction)
}

//Decorate adds new information to the error. It also returns the current
//decoration slice.
func (err *DomainError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// TempRangeError reports a temperature outside every known validity range of
// the NASA polynomials of a species that participates in a reversible
// reaction.
type TempRangeError struct {
	Species string
	Temp    float64
	deco    []string
}

func (err *TempRangeError) Error() string {
	return fmt.Sprintf("chemkin: no NASA coefficients for %s at T=%v", err.Species, err.Temp)
}

func (err *TempRangeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ThermoUndefinedError reports that a species participating in a reversible
// reaction has no thermodynamic record in the system (it was absent from the
// coefficient store the system was built from).
type ThermoUndefinedError struct {
	Species string
	deco    []string
}

func (err *ThermoUndefinedError) Error() string {
	return fmt.Sprintf("chemkin: NASA coefficients for %s are not defined", err.Species)
}

func (err *ThermoUndefinedError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// SizeError reports a concentration vector whose length does not match the
// number of species in the system.
type SizeError struct {
	Want int
	Got  int
	deco []string
}

func (err *SizeError) Error() string {
	return fmt.Sprintf("chemkin: concentrations must have one entry per species: want %d, got %d", err.Want, err.Got)
}

func (err *SizeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
