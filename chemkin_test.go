/*
 * chemkin_test.go, part of chemkin.
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
	"testing"

	"github.com/chemkinetics/chemkin/thermochem"
)

//An in-memory coefficient store, so the engine tests don't touch sqlite.

type fakeFit struct {
	tmin, tmax float64
	coeffs     [7]float64
}

type fakeStore map[string][2]fakeFit //[0] low range, [1] high

type fakeNotFound string

func (e fakeNotFound) Error() string  { return fmt.Sprintf("no coefficients for %s", string(e)) }
func (e fakeNotFound) NotFound() bool { return true }

func (s fakeStore) Coeffs(species, tempRange string) ([7]float64, float64, float64, error) {
	fits, ok := s[species]
	if !ok {
		return [7]float64{}, 0, 0, fakeNotFound(species)
	}
	f := fits[0]
	if tempRange == "high" {
		f = fits[1]
	}
	return f.coeffs, f.tmin, f.tmax, nil
}

//flatThermo gives every listed species the same constant-zero NASA rows on
//[200, 1000] and [1000, 3500], which makes every Kc exactly 1.
func flatThermo(species ...string) fakeStore {
	s := make(fakeStore)
	for _, name := range species {
		s[name] = [2]fakeFit{{tmin: 200, tmax: 1000}, {tmin: 1000, tmax: 3500}}
	}
	return s
}

func TestNu(Te *testing.T) {
	sys, err := NewReactionSystem([]string{"A", "B", "C"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1, "B": 2}, Products: map[string]float64{"C": 1}, Rate: ConstantRate{K: 1}},
		{ID: "r2", Type: Elementary, Reactants: map[string]float64{"C": 2}, Products: map[string]float64{"A": 1}, Rate: ConstantRate{K: 1}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	nuReact, nuProd := sys.Nu()
	wantReact := [3][2]float64{{1, 0}, {2, 0}, {0, 2}}
	wantProd := [3][2]float64{{0, 1}, {0, 0}, {1, 0}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if got := nuReact.At(i, j); got != wantReact[i][j] {
				Te.Errorf("nuReact[%d,%d] = %v, want %v", i, j, got, wantReact[i][j])
			}
			if got := nuProd.At(i, j); got != wantProd[i][j] {
				Te.Errorf("nuProd[%d,%d] = %v, want %v", i, j, got, wantProd[i][j])
			}
		}
	}
}

func TestConstructionDuplicateID(Te *testing.T) {
	_, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 1}},
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"B": 1}, Products: map[string]float64{"A": 1}, Rate: ConstantRate{K: 1}},
	}, nil, nil)
	if err == nil {
		Te.Error("Construction with a duplicate reaction id must fail")
	}
}

func TestConstructionUnknownSpecies(Te *testing.T) {
	_, err := NewReactionSystem([]string{"A"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 1}},
	}, nil, nil)
	if err == nil {
		Te.Error("Construction with a reaction referencing an unknown species must fail")
	}
}

func TestProgressAndProductionRates(Te *testing.T) {
	//A -> B with k=2 and concentrations A=3, B=0: r = 2*3 = 6, omega = (-6, +6)
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	progress, err := sys.ProgressRates([]float64{3, 0}, 300)
	if err != nil {
		Te.Fatal(err)
	}
	if len(progress) != 1 || progress[0] != 6 {
		Te.Errorf("progress = %v, want [6]", progress)
	}
	production, err := sys.ProductionRates(progress)
	if err != nil {
		Te.Fatal(err)
	}
	if production[0] != -6 || production[1] != 6 {
		Te.Errorf("production = %v, want [-6 6]", production)
	}
}

func TestNegativeConcentration(Te *testing.T) {
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = sys.ProgressRates([]float64{3, -1}, 300)
	derr, ok := err.(*DomainError)
	if !ok {
		Te.Fatalf("want *DomainError, got %v", err)
	}
	if derr.Species != 1 || derr.Value != -1 {
		Te.Errorf("DomainError names species %d value %v, want 1 and -1", derr.Species, derr.Value)
	}
}

func TestConcentrationLength(Te *testing.T) {
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = sys.ProgressRates([]float64{3}, 300)
	serr, ok := err.(*SizeError)
	if !ok {
		Te.Fatalf("want *SizeError, got %v", err)
	}
	if serr.Want != 2 || serr.Got != 1 {
		Te.Errorf("SizeError = %+v, want Want=2 Got=1", serr)
	}
}

func TestNonElementaryRejected(Te *testing.T) {
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: "ThreeBody", Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = sys.ProgressRates([]float64{3, 0}, 300); err == nil {
		Te.Error("Progress rates for a non-Elementary reaction must fail")
	}
}

func TestRateLaws(Te *testing.T) {
	const T = 1500.0
	k, err := ConstantRate{K: 1e4}.Coeff(T)
	if err != nil || k != 1e4 {
		Te.Errorf("constant: k = %v, err = %v", k, err)
	}
	k, err = Arrhenius{A: 1e7, E: 1e4}.Coeff(T)
	want := 1e7 * math.Exp(-1e4/(RGas*T))
	if err != nil || math.Abs(k-want) > 1e-9*want {
		Te.Errorf("arrhenius: k = %v, want %v (err %v)", k, want, err)
	}
	k, err = ModifiedArrhenius{A: 1e7, B: 0.5, E: 1e4}.Coeff(T)
	want = 1e7 * math.Sqrt(T) * math.Exp(-1e4/(RGas*T))
	if err != nil || math.Abs(k-want) > 1e-9*want {
		Te.Errorf("modified arrhenius: k = %v, want %v (err %v)", k, want, err)
	}
}

func TestRateLawValidation(Te *testing.T) {
	if _, err := (Arrhenius{A: -1, E: 1e4}).Coeff(300); err == nil {
		Te.Error("Negative pre-exponential factor must fail")
	}
	if _, err := (Arrhenius{A: 1e7, E: 1e4}).Coeff(-300); err == nil {
		Te.Error("Negative temperature must fail")
	}
	if _, err := (ModifiedArrhenius{A: 0, B: 0.5, E: 1e4}).Coeff(300); err == nil {
		Te.Error("Zero pre-exponential factor must fail")
	}
	if _, err := (ConstantRate{K: -2}).Coeff(300); err == nil {
		Te.Error("Negative constant coefficient must fail")
	}
}

func TestTemperatureOutOfRange(Te *testing.T) {
	store := flatThermo("A", "B")
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Reversible: true, Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, store, thermochem.New())
	if err != nil {
		Te.Fatal(err)
	}
	_, err = sys.ProgressRates([]float64{1, 1}, 5000)
	terr, ok := err.(*TempRangeError)
	if !ok {
		Te.Fatalf("want *TempRangeError, got %v", err)
	}
	if terr.Species != "A" || terr.Temp != 5000 {
		Te.Errorf("TempRangeError = %+v, want species A at T=5000", terr)
	}
}

func TestUndefinedThermoForReversible(Te *testing.T) {
	//B is absent from the store: fine at construction (mixed system), fatal
	//once a reversible reaction needs it.
	store := flatThermo("A")
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Reversible: true, Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, store, thermochem.New())
	if err != nil {
		Te.Fatal(err)
	}
	_, err = sys.ProgressRates([]float64{1, 1}, 500)
	if _, ok := err.(*ThermoUndefinedError); !ok {
		Te.Fatalf("want *ThermoUndefinedError, got %v", err)
	}
}

func TestReversibleEquilibrium(Te *testing.T) {
	//With identical NASA rows for A and B, delta H and delta S vanish and
	//gamma = 0, so Kc = 1 and kb = kf. At equal concentrations the forward
	//and backward mass-action terms cancel.
	var _ EquilibriumEvaluator = thermochem.New()
	store := flatThermo("A", "B")
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Reversible: true, Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 3}},
	}, store, thermochem.New())
	if err != nil {
		Te.Fatal(err)
	}
	progress, err := sys.ProgressRates([]float64{2, 2}, 500)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(progress[0]) > 1e-12 {
		Te.Errorf("net progress rate at equilibrium = %v, want 0", progress[0])
	}
}

func TestIrreversibleBackwardCoeffsZero(Te *testing.T) {
	sys, err := NewReactionSystem([]string{"A", "B"}, []*Reaction{
		{ID: "r1", Type: Elementary, Reactants: map[string]float64{"A": 1}, Products: map[string]float64{"B": 1}, Rate: ConstantRate{K: 2}},
	}, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	kb, err := sys.BackwardCoeffs([]float64{2}, 300)
	if err != nil {
		Te.Fatal(err)
	}
	if kb[0] != 0 {
		Te.Errorf("kb for an irreversible reaction = %v, want 0", kb[0])
	}
}
