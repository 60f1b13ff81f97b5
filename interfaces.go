/*
 * interfaces.go, part of chemkin.
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

import "gonum.org/v1/gonum/mat"

// RateCoeff is a rate-coefficient law. Implementations map a temperature to a
// forward rate coefficient. New laws are added by adding implementations, not
// by switching on type tags inside the engine.
type RateCoeff interface {
	//Coeff returns the rate coefficient at the temperature T, in K.
	Coeff(T float64) (float64, error)
}

// CoeffGetter is the read side of a NASA-polynomial coefficient store, from
// which a ReactionSystem builds its per-species thermodynamic table at
// construction. The range argument is "low" or "high". A store signals an
// absent species with an error implementing NotFound() bool, which the engine
// treats as "no thermodynamic data" rather than as a failure (mixed systems
// are allowed). Package nasa provides the persistent implementation.
type CoeffGetter interface {
	Coeffs(species, tempRange string) (coeffs [7]float64, tMin, tMax float64, err error)
}

// EquilibriumEvaluator converts thermodynamic data into a backward rate
// coefficient for one reversible reaction: nuNet is the reaction's net
// stoichiometry column (products minus reactants, length I), kf its forward
// coefficient, and nasaT the I×7 matrix of NASA coefficients valid at T.
// Package thermochem provides the standard implementation.
type EquilibriumEvaluator interface {
	BackwardCoeff(nuNet []float64, kf float64, nasaT *mat.Dense, T float64) (float64, error)
}

//Errors

// Error is the interface for errors that all packages in this library
// implement. The Decorate method adds and retrieves information from the
// error as it travels up the call stack, without changing its type or
// wrapping it in something else. If passed an empty string it only returns
// the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}
