/*
 * parser.go, part of chemkin.
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

//Package parser reads CTML-style reaction definition XML into the engine's
//types: the species list, the per-species NASA polynomial fits (ready for
//nasa.Store.Load) and the reaction list with stoichiometry maps and rate
//laws. It does no kinetics; it only feeds the chemkin engine and the nasa
//store.
package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chemkinetics/chemkin"
	"github.com/chemkinetics/chemkin/nasa"
)

// Mechanism is a parsed reaction definition document: the ordered species
// list, the thermodynamic fits of each species that carries any, and the
// reactions.
type Mechanism struct {
	Species     []string
	SpeciesData []nasa.SpeciesData
	Reactions   []*chemkin.Reaction
}

// System builds a validated ReactionSystem from the mechanism, reading
// coefficients from store and using eq for reversible reactions.
func (m *Mechanism) System(store chemkin.CoeffGetter, eq chemkin.EquilibriumEvaluator) (*chemkin.ReactionSystem, error) {
	return chemkin.NewReactionSystem(m.Species, m.Reactions, store, eq)
}

//The XML shapes. Stoichiometry lists are whitespace-separated NAME:COEFF
//pairs in element text; NASA fits sit under thermo with the coefficients in
//a comma-separated floatArray.

type ctmlXML struct {
	XMLName xml.Name   `xml:"ctml"`
	Phases  []phaseXML `xml:"phase"`
	Species []struct {
		Name   string    `xml:"name,attr"`
		Thermo *struct { //optional: reaction-only documents carry no thermo
			Fits []nasaXML `xml:"NASA"`
		} `xml:"thermo"`
	} `xml:"speciesData>species"`
	Reactions []reactionXML `xml:"reactionData>reaction"`
}

type phaseXML struct {
	SpeciesArray string `xml:"speciesArray"`
}

type nasaXML struct {
	TMin       string `xml:"Tmin,attr"`
	TMax       string `xml:"Tmax,attr"`
	FloatArray string `xml:"floatArray"`
}

type reactionXML struct {
	ID         string `xml:"id,attr"`
	Reversible string `xml:"reversible,attr"`
	Type       string `xml:"type,attr"`
	Equation   string `xml:"equation"`
	RateCoeff  struct {
		Constant *struct {
			K string `xml:"k"`
		} `xml:"Constant"`
		Arrhenius *struct {
			A string `xml:"A"`
			E string `xml:"E"`
		} `xml:"Arrhenius"`
		ModifiedArrhenius *struct {
			A string `xml:"A"`
			B string `xml:"b"`
			E string `xml:"E"`
		} `xml:"modifiedArrhenius"`
	} `xml:"rateCoeff"`
	Reactants string `xml:"reactants"`
	Products  string `xml:"products"`
}

// ParseFile parses the reaction definition XML file at path.
func ParseFile(path string) (*Mechanism, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return m, nil
}

// Parse parses a reaction definition document.
func Parse(r io.Reader) (*Mechanism, error) {
	var doc ctmlXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Malformed reaction XML: %v", err)
	}
	m := new(Mechanism)
	for _, ph := range doc.Phases {
		m.Species = append(m.Species, strings.Fields(ph.SpeciesArray)...)
	}
	for _, sp := range doc.Species {
		if sp.Thermo == nil {
			continue
		}
		data := nasa.SpeciesData{Name: sp.Name}
		for _, fx := range sp.Thermo.Fits {
			fit, err := parseFit(fx)
			if err != nil {
				return nil, fmt.Errorf("Species %s: %v", sp.Name, err)
			}
			data.Fits = append(data.Fits, fit)
		}
		m.SpeciesData = append(m.SpeciesData, data)
	}
	for _, rx := range doc.Reactions {
		reaction, err := parseReaction(rx)
		if err != nil {
			return nil, err
		}
		m.Reactions = append(m.Reactions, reaction)
	}
	return m, nil
}

func parseFit(fx nasaXML) (nasa.Fit, error) {
	var fit nasa.Fit
	var err error
	if fit.TMin, err = strconv.ParseFloat(strings.TrimSpace(fx.TMin), 64); err != nil {
		return fit, fmt.Errorf("bad Tmin %q", fx.TMin)
	}
	if fit.TMax, err = strconv.ParseFloat(strings.TrimSpace(fx.TMax), 64); err != nil {
		return fit, fmt.Errorf("bad Tmax %q", fx.TMax)
	}
	fields := strings.Split(fx.FloatArray, ",")
	if len(fields) != 7 {
		return fit, fmt.Errorf("NASA fit has %d coefficients, need 7", len(fields))
	}
	for i, field := range fields {
		if fit.Coeffs[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return fit, fmt.Errorf("bad coefficient %q", field)
		}
	}
	return fit, nil
}

func parseReaction(rx reactionXML) (*chemkin.Reaction, error) {
	reactants, err := parseStoich(rx.Reactants)
	if err != nil {
		return nil, fmt.Errorf("Reaction %s reactants: %v", rx.ID, err)
	}
	products, err := parseStoich(rx.Products)
	if err != nil {
		return nil, fmt.Errorf("Reaction %s products: %v", rx.ID, err)
	}
	rate, err := parseRateCoeff(rx)
	if err != nil {
		return nil, fmt.Errorf("Reaction %s: %v", rx.ID, err)
	}
	return &chemkin.Reaction{
		ID:         rx.ID,
		Reversible: rx.Reversible == "yes",
		Type:       rx.Type,
		Reactants:  reactants,
		Products:   products,
		Rate:       rate,
		Equation:   strings.TrimSpace(rx.Equation),
	}, nil
}

//parseStoich parses "H:1 O2:1" into a stoichiometry map.
func parseStoich(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, field := range strings.Fields(s) {
		name, coeff, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("bad stoichiometry entry %q", field)
		}
		v, err := strconv.ParseFloat(coeff, 64)
		if err != nil {
			return nil, fmt.Errorf("bad stoichiometric coefficient %q for %s", coeff, name)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative stoichiometric coefficient %v for %s", v, name)
		}
		out[name] = v
	}
	return out, nil
}

func parseRateCoeff(rx reactionXML) (chemkin.RateCoeff, error) {
	rc := rx.RateCoeff
	parse := func(s, what string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q in rate coefficient", what, s)
		}
		return v, nil
	}
	switch {
	case rc.Constant != nil:
		k, err := parse(rc.Constant.K, "k")
		if err != nil {
			return nil, err
		}
		return chemkin.ConstantRate{K: k}, nil
	case rc.Arrhenius != nil:
		a, err := parse(rc.Arrhenius.A, "A")
		if err != nil {
			return nil, err
		}
		e, err := parse(rc.Arrhenius.E, "E")
		if err != nil {
			return nil, err
		}
		return chemkin.Arrhenius{A: a, E: e}, nil
	case rc.ModifiedArrhenius != nil:
		a, err := parse(rc.ModifiedArrhenius.A, "A")
		if err != nil {
			return nil, err
		}
		b, err := parse(rc.ModifiedArrhenius.B, "b")
		if err != nil {
			return nil, err
		}
		e, err := parse(rc.ModifiedArrhenius.E, "E")
		if err != nil {
			return nil, err
		}
		return chemkin.ModifiedArrhenius{A: a, B: b, E: e}, nil
	}
	return nil, fmt.Errorf("no supported rate coefficient law (want Constant, Arrhenius or modifiedArrhenius)")
}
