/*
 * thermochem.go, part of chemkin.
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

/*Package thermochem derives backward rate coefficients of reversible
reactions from NASA polynomial thermodynamics. For a reaction with net
stoichiometry nu and forward coefficient kf, it computes the dimensionless
enthalpies H/(R T) and entropies S/R of every participating species from the
seven NASA coefficients, contracts them with nu into Gibbs-energy
differences, and obtains

	Kp = exp(ΔS/R - ΔH/(R T))
	Kc = Kp (P0/(R T))^γ      with γ = Σ nu
	kb = kf / Kc

The Evaluator satisfies chemkin.EquilibriumEvaluator.*/
package thermochem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Reference pressure and gas constant used in the equilibrium constant,
// in Pa and J/(mol K).
const (
	P0 = 1.0e+05
	R  = 8.3144598
)

// Evaluator computes backward rate coefficients. The zero value is not
// usable; use New.
type Evaluator struct {
	p0 float64
	r  float64
}

// New returns an Evaluator using the standard reference pressure P0 and gas
// constant R.
func New() *Evaluator {
	return &Evaluator{p0: P0, r: R}
}

// BackwardCoeff returns kb = kf/Kc for one reversible reaction. nuNet is the
// net stoichiometry column of the reaction (length I) and nasaT the I×7
// matrix of NASA coefficients valid at T; rows of species with nuNet[i] == 0
// are never read, so they may be zero.
func (ev *Evaluator) BackwardCoeff(nuNet []float64, kf float64, nasaT *mat.Dense, T float64) (float64, error) {
	if T <= 0 {
		return 0, fmt.Errorf("T = %v: Temperatures must be positive, in K", T)
	}
	rows, cols := nasaT.Dims()
	if rows != len(nuNet) || cols != 7 {
		return 0, fmt.Errorf("NASA coefficient matrix is %dx%d, want %dx7", rows, cols, len(nuNet))
	}
	var gamma, deltaS, deltaH float64 //ΔS/R and ΔH/(R T)
	for i, nu := range nuNet {
		if nu == 0 {
			continue
		}
		a := nasaT.RawRowView(i)
		gamma += nu
		deltaH += nu * enthalpyRT(a, T)
		deltaS += nu * entropyR(a, T)
	}
	kc := math.Exp(deltaS-deltaH) * math.Pow(ev.p0/(ev.r*T), gamma)
	if kc == 0 || math.IsInf(kc, 0) || math.IsNaN(kc) {
		return 0, fmt.Errorf("Equilibrium constant Kc = %v at T = %v is not usable", kc, T)
	}
	return kf / kc, nil
}

//Dimensionless NASA polynomial forms. a holds the seven coefficients.

//enthalpyRT returns H/(R T).
func enthalpyRT(a []float64, T float64) float64 {
	return a[0] + a[1]*T/2 + a[2]*T*T/3 + a[3]*T*T*T/4 + a[4]*T*T*T*T/5 + a[5]/T
}

//entropyR returns S/R.
func entropyR(a []float64, T float64) float64 {
	return a[0]*math.Log(T) + a[1]*T + a[2]*T*T/2 + a[3]*T*T*T/3 + a[4]*T*T*T*T/4 + a[6]
}

//heatCapacityR returns Cp/R. Exposed for completeness of the NASA forms;
//the equilibrium constant itself only needs H and S.
func heatCapacityR(a []float64, T float64) float64 {
	return a[0] + a[1]*T + a[2]*T*T + a[3]*T*T*T + a[4]*T*T*T*T
}

// HeatCapacityR returns the dimensionless heat capacity Cp/R of one species
// from its seven NASA coefficients at T.
func HeatCapacityR(coeffs [7]float64, T float64) float64 {
	return heatCapacityR(coeffs[:], T)
}

// EnthalpyRT returns the dimensionless enthalpy H/(R T) of one species from
// its seven NASA coefficients at T.
func EnthalpyRT(coeffs [7]float64, T float64) float64 {
	return enthalpyRT(coeffs[:], T)
}

// EntropyR returns the dimensionless entropy S/R of one species from its
// seven NASA coefficients at T.
func EntropyR(coeffs [7]float64, T float64) float64 {
	return entropyR(coeffs[:], T)
}
