/*
 * rates.go, part of chemkin.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Nu returns the I×J reactant and product stoichiometric matrices: entry
// (i, j) is the coefficient of species i among the reactants (resp. products)
// of reaction j, zero when the species does not appear there. The net
// stoichiometry is nuProd - nuReact.
func (S *ReactionSystem) Nu() (nuReact, nuProd *mat.Dense) {
	I, J := S.NSpecies(), S.NReactions()
	nuReact = mat.NewDense(I, J, nil)
	nuProd = mat.NewDense(I, J, nil)
	for j, r := range S.Reactions {
		for name, coeff := range r.Reactants {
			nuReact.Set(S.index[name], j, coeff)
		}
		for name, coeff := range r.Products {
			nuProd.Set(S.index[name], j, coeff)
		}
	}
	return nuReact, nuProd
}

// RateCoeffs evaluates the forward rate coefficient of every reaction at the
// temperature T, in reaction order.
func (S *ReactionSystem) RateCoeffs(T float64) ([]float64, error) {
	kf := make([]float64, S.NReactions())
	for j, r := range S.Reactions {
		k, err := r.Rate.Coeff(T)
		if err != nil {
			return nil, fmt.Errorf("Reaction %s: %v", r.ID, err)
		}
		kf[j] = k
	}
	return kf, nil
}

// BackwardCoeffs returns the backward rate coefficient of every reaction at
// T, given the forward coefficients kf. Irreversible reactions get 0, which
// is never used downstream; reversible ones are delegated to the system's
// equilibrium evaluator with their net stoichiometry column and the NASA
// coefficient matrix at T.
func (S *ReactionSystem) BackwardCoeffs(kf []float64, T float64) ([]float64, error) {
	kb := make([]float64, S.NReactions())
	reversible := false
	for _, r := range S.Reactions {
		if r.Reversible {
			reversible = true
			break
		}
	}
	if !reversible {
		return kb, nil
	}
	if S.eq == nil {
		return nil, fmt.Errorf("The system contains reversible reactions but no equilibrium evaluator")
	}
	nasaT, err := S.NASACoeffMatrix(T)
	if err != nil {
		return nil, errDecorate(err, "BackwardCoeffs")
	}
	nuReact, nuProd := S.Nu()
	var nuNet mat.Dense
	nuNet.Sub(nuProd, nuReact)
	col := make([]float64, S.NSpecies())
	for j, r := range S.Reactions {
		if !r.Reversible {
			continue
		}
		mat.Col(col, j, &nuNet)
		kb[j], err = S.eq.BackwardCoeff(col, kf[j], nasaT, T)
		if err != nil {
			return nil, fmt.Errorf("Reaction %s: %v", r.ID, err)
		}
	}
	return kb, nil
}

// ProgressRates returns the progress rate of every reaction at the given
// concentrations (one non-negative entry per species, in species order) and
// temperature: the forward mass-action term minus, for reversible reactions,
// the backward one. Every reaction must be tagged Elementary or the whole
// call fails before any arithmetic. Negative rate coefficients,
// concentrations or stoichiometric exponents abort at first detection.
func (S *ReactionSystem) ProgressRates(concs []float64, T float64) ([]float64, error) {
	if len(concs) != S.NSpecies() {
		return nil, &SizeError{Want: S.NSpecies(), Got: len(concs)}
	}
	for _, r := range S.Reactions {
		if r.Type != Elementary {
			return nil, fmt.Errorf("Progress rates for %s reactions are not supported (reaction %s)", r.Type, r.ID)
		}
	}
	nuReact, nuProd := S.Nu()
	kf, err := S.RateCoeffs(T)
	if err != nil {
		return nil, err
	}
	forward, err := massAction(nuReact, concs, kf)
	if err != nil {
		return nil, errDecorate(err, "ProgressRates")
	}
	kb, err := S.BackwardCoeffs(kf, T)
	if err != nil {
		return nil, err
	}
	backward, err := massAction(nuProd, concs, kb)
	if err != nil {
		return nil, errDecorate(err, "ProgressRates")
	}
	for j := range forward {
		forward[j] -= backward[j]
	}
	return forward, nil
}

// ProductionRates contracts the net stoichiometry with the given progress
// rates: omega = (nuProd - nuReact) · r, one entry per species.
func (S *ReactionSystem) ProductionRates(progress []float64) ([]float64, error) {
	if len(progress) != S.NReactions() {
		return nil, fmt.Errorf("Progress rates must have one entry per reaction: want %d, got %d", S.NReactions(), len(progress))
	}
	nuReact, nuProd := S.Nu()
	var nu mat.Dense
	nu.Sub(nuProd, nuReact)
	var omega mat.VecDense
	omega.MulVec(&nu, mat.NewVecDense(len(progress), progress))
	out := make([]float64, S.NSpecies())
	for i := range out {
		out[i] = omega.AtVec(i)
	}
	return out, nil
}

//massAction computes r_j = k_j * prod_i conc_i^nu_ij for every reaction,
//checking each factor before multiplying and stopping at the first
//non-physical value.
func massAction(nu *mat.Dense, concs, k []float64) ([]float64, error) {
	progress := make([]float64, len(k))
	copy(progress, k)
	for j := range progress {
		if progress[j] < 0 {
			return nil, &DomainError{Quantity: "rate coefficient", Species: -1, Reaction: j, Value: progress[j]}
		}
		for i, x := range concs {
			nuIJ := nu.At(i, j)
			if x < 0 {
				return nil, &DomainError{Quantity: "concentration", Species: i, Reaction: -1, Value: x}
			}
			if nuIJ < 0 {
				return nil, &DomainError{Quantity: "stoichiometric coefficient", Species: i, Reaction: j, Value: nuIJ}
			}
			progress[j] *= math.Pow(x, nuIJ)
		}
	}
	return progress, nil
}
