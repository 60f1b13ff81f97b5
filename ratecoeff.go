/*
 * ratecoeff.go, part of chemkin.
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
)

// RGas is the ideal gas constant used by the rate laws, in J/(mol K).
const RGas = 8.314

// ConstantRate is a temperature-independent rate coefficient.
type ConstantRate struct {
	K float64
}

func (c ConstantRate) Coeff(T float64) (float64, error) {
	if c.K < 0 {
		return 0, fmt.Errorf("Negative constant rate coefficient: %v", c.K)
	}
	return c.K, nil
}

// Arrhenius is the rate law k = A exp(-E/(R T)). R defaults to RGas if left
// zero.
type Arrhenius struct {
	A float64 //pre-exponential factor
	E float64 //activation energy, J/mol
	R float64
}

func (a Arrhenius) Coeff(T float64) (float64, error) {
	r := a.R
	if r == 0 {
		r = RGas
	}
	if err := checkArrhenius(a.A, r, T); err != nil {
		return 0, err
	}
	return a.A * math.Exp(-a.E/(r*T)), nil
}

// ModifiedArrhenius is the rate law k = A T^b exp(-E/(R T)). R defaults to
// RGas if left zero.
type ModifiedArrhenius struct {
	A float64
	B float64 //temperature exponent
	E float64
	R float64
}

func (m ModifiedArrhenius) Coeff(T float64) (float64, error) {
	r := m.R
	if r == 0 {
		r = RGas
	}
	if err := checkArrhenius(m.A, r, T); err != nil {
		return 0, err
	}
	return m.A * math.Pow(T, m.B) * math.Exp(-m.E/(r*T)), nil
}

func checkArrhenius(A, R, T float64) error {
	if A <= 0 {
		return fmt.Errorf("A = %v: The pre-exponential factor must be positive", A)
	}
	if R <= 0 {
		return fmt.Errorf("R = %v: The gas constant must be positive", R)
	}
	if T <= 0 {
		return fmt.Errorf("T = %v: Temperatures must be positive, in K", T)
	}
	return nil
}
