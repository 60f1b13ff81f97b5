/*
 * nasa_test.go, part of chemkin.
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

package nasa

import (
	"path/filepath"
	"testing"
)

func openTestStore(Te *testing.T) *Store {
	Te.Helper()
	s, err := Open(filepath.Join(Te.TempDir(), "coeffs.db"))
	if err != nil {
		Te.Fatal(err)
	}
	Te.Cleanup(func() { s.Close() })
	return s
}

func TestRoundTrip(Te *testing.T) {
	s := openTestStore(Te)
	low := Fit{TMin: 200, TMax: 1000, Coeffs: [7]float64{1, 2, 3, 4, 5, 6, 7}}
	high := Fit{TMin: 1000, TMax: 3500, Coeffs: [7]float64{7, 6, 5, 4, 3, 2, 1}}
	err := s.Load([]SpeciesData{{Name: "H2O", Fits: []Fit{low, high}}})
	if err != nil {
		Te.Fatal(err)
	}
	coeffs, tmin, tmax, err := s.Coeffs("H2O", Low)
	if err != nil {
		Te.Fatal(err)
	}
	if coeffs != low.Coeffs || tmin != low.TMin || tmax != low.TMax {
		Te.Errorf("low range: got %v [%v, %v], want %v", coeffs, tmin, tmax, low)
	}
	coeffs, tmin, tmax, err = s.Coeffs("H2O", High)
	if err != nil {
		Te.Fatal(err)
	}
	if coeffs != high.Coeffs || tmin != high.TMin || tmax != high.TMax {
		Te.Errorf("high range: got %v [%v, %v], want %v", coeffs, tmin, tmax, high)
	}
}

//TestNumericRangeOrder feeds the fits in reverse order with bounds that a
//lexicographic comparison would misclassify ("999.9" > "1000" as strings).
func TestNumericRangeOrder(Te *testing.T) {
	s := openTestStore(Te)
	hot := Fit{TMin: 999.9, TMax: 1000, Coeffs: [7]float64{1, 1, 1, 1, 1, 1, 1}}
	cold := Fit{TMin: 200, TMax: 999.9, Coeffs: [7]float64{2, 2, 2, 2, 2, 2, 2}}
	if err := s.Load([]SpeciesData{{Name: "X", Fits: []Fit{hot, cold}}}); err != nil {
		Te.Fatal(err)
	}
	coeffs, _, tmax, err := s.Coeffs("X", High)
	if err != nil {
		Te.Fatal(err)
	}
	if tmax != 1000 || coeffs != hot.Coeffs {
		Te.Errorf("high range Tmax = %v coeffs = %v, want the Tmax=1000 fit", tmax, coeffs)
	}
}

func TestFitCount(Te *testing.T) {
	s := openTestStore(Te)
	one := []SpeciesData{{Name: "X", Fits: []Fit{{TMin: 200, TMax: 1000}}}}
	if err := s.Load(one); err == nil {
		Te.Error("Load with a single fit must fail")
	}
	three := []SpeciesData{{Name: "X", Fits: []Fit{{}, {}, {}}}}
	if err := s.Load(three); err == nil {
		Te.Error("Load with three fits must fail")
	}
}

//TestLoadReplaces checks that a load replaces prior contents instead of
//merging, and that a failed load leaves them untouched.
func TestLoadReplaces(Te *testing.T) {
	s := openTestStore(Te)
	two := []Fit{{TMin: 200, TMax: 1000}, {TMin: 1000, TMax: 3500}}
	if err := s.Load([]SpeciesData{{Name: "A", Fits: two}}); err != nil {
		Te.Fatal(err)
	}
	if err := s.Load([]SpeciesData{{Name: "B", Fits: two}}); err != nil {
		Te.Fatal(err)
	}
	if _, _, _, err := s.Coeffs("A", Low); err == nil {
		Te.Error("A should be gone after a load that does not include it")
	}
	if _, _, _, err := s.Coeffs("B", Low); err != nil {
		Te.Errorf("B should be present: %v", err)
	}
	//a bad load must roll back completely
	if err := s.Load([]SpeciesData{{Name: "C", Fits: two}, {Name: "D", Fits: two[:1]}}); err == nil {
		Te.Fatal("Load with a bad species must fail")
	}
	if _, _, _, err := s.Coeffs("B", Low); err != nil {
		Te.Errorf("B should have survived the failed load: %v", err)
	}
	if _, _, _, err := s.Coeffs("C", Low); err == nil {
		Te.Error("C must not be visible after a failed load")
	}
}

func TestErrors(Te *testing.T) {
	s := openTestStore(Te)
	_, _, _, err := s.Coeffs("H2O", "medium")
	if _, ok := err.(*RangeError); !ok {
		Te.Errorf("want *RangeError for a bad range literal, got %v", err)
	}
	_, _, _, err = s.Coeffs("unobtainium", Low)
	nf, ok := err.(*NotFoundError)
	if !ok {
		Te.Fatalf("want *NotFoundError for an absent species, got %v", err)
	}
	if !nf.NotFound() || nf.Species != "unobtainium" {
		Te.Errorf("NotFoundError = %+v", nf)
	}
}
