/*
 * thermo.go, part of chemkin.
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

//The per-species thermodynamic table. "Undefined" is a first-class state
//(the defined flag), not a missing map entry: a species may legitimately
//lack NASA data as long as no reversible reaction needs it.

type thermoFit struct {
	tMin, tMax float64
	coeffs     [7]float64
}

type thermoRecord struct {
	defined   bool
	low, high thermoFit
}

//lookupThermo fetches both temperature ranges of one species from the store.
//A not-found answer from the store (for either range) marks the record
//undefined; any other store error aborts.
func lookupThermo(store CoeffGetter, name string) (thermoRecord, error) {
	var rec thermoRecord
	for _, rng := range []string{"low", "high"} {
		coeffs, tmin, tmax, err := store.Coeffs(name, rng)
		if err != nil {
			if nf, ok := err.(interface{ NotFound() bool }); ok && nf.NotFound() {
				return thermoRecord{}, nil
			}
			return thermoRecord{}, err
		}
		fit := thermoFit{tMin: tmin, tMax: tmax, coeffs: coeffs}
		if rng == "low" {
			rec.low = fit
		} else {
			rec.high = fit
		}
	}
	rec.defined = true
	return rec, nil
}

//nasaAt returns the NASA coefficients of species i valid at T, trying the
//low range first.
func (S *ReactionSystem) nasaAt(i int, T float64) ([7]float64, error) {
	rec := S.thermo[i]
	if !rec.defined {
		return [7]float64{}, &ThermoUndefinedError{Species: S.Species[i]}
	}
	if rec.low.tMin <= T && T <= rec.low.tMax {
		return rec.low.coeffs, nil
	}
	if rec.high.tMin <= T && T <= rec.high.tMax {
		return rec.high.coeffs, nil
	}
	return [7]float64{}, &TempRangeError{Species: S.Species[i], Temp: T}
}

// NASACoeffMatrix returns the I×7 matrix of NASA polynomial coefficients
// valid at temperature T. Only species taking part in at least one reversible
// reaction get a row; the rest are left as zero rows, which nothing
// downstream reads. A participating species with undefined thermodynamics,
// or with no validity range containing T, is an error naming the species.
func (S *ReactionSystem) NASACoeffMatrix(T float64) (*mat.Dense, error) {
	result := mat.NewDense(S.NSpecies(), 7, nil)
	needed := make([]bool, S.NSpecies())
	for _, r := range S.Reactions {
		if !r.Reversible {
			continue
		}
		for name := range r.Reactants {
			needed[S.index[name]] = true
		}
		for name := range r.Products {
			needed[S.index[name]] = true
		}
	}
	for i, need := range needed {
		if !need {
			continue
		}
		coeffs, err := S.nasaAt(i, T)
		if err != nil {
			return nil, errDecorate(err, "NASACoeffMatrix")
		}
		result.SetRow(i, coeffs[:])
	}
	return result, nil
}
