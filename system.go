/*
 * system.go, part of chemkin.
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

// Elementary is the only reaction type the engine can evaluate. Other type
// tags are accepted at construction but rejected by ProgressRates.
const Elementary = "Elementary"

// Reaction is one reaction of a system: its identifier, reversibility, type
// tag, reactant and product stoichiometry maps (species name to non-negative
// coefficient), rate law and human-readable equation. Reactions are treated
// as immutable once a ReactionSystem is built from them.
type Reaction struct {
	ID         string
	Reversible bool
	Type       string
	Reactants  map[string]float64
	Products   map[string]float64
	Rate       RateCoeff
	Equation   string
}

// ReactionSystem owns an ordered species list (defining the species index i)
// and an ordered reaction list (defining the reaction index j), plus a
// per-species thermodynamic table built from a coefficient store at
// construction. It is read-only after construction: every query is a pure
// function of (T, concentrations).
type ReactionSystem struct {
	Species   []string
	Reactions []*Reaction
	index     map[string]int
	thermo    []thermoRecord
	eq        EquilibriumEvaluator
}

// NewReactionSystem builds a system from the given species and reactions,
// reading NASA coefficients for each species from store. Species absent from
// the store are recorded as having undefined thermodynamics (mixed systems
// are allowed; the gap only matters, and then fails, if such a species later
// takes part in a reversible reaction). A nil store leaves every species
// undefined; a nil evaluator is only an error if a reversible reaction is
// later evaluated. Construction fails, returning no system at all, if a
// reaction identifier is repeated or a reactant/product references a species
// missing from the species list.
func NewReactionSystem(species []string, reactions []*Reaction, store CoeffGetter, eq EquilibriumEvaluator) (*ReactionSystem, error) {
	S := &ReactionSystem{
		Species:   species,
		Reactions: reactions,
		index:     make(map[string]int, len(species)),
		thermo:    make([]thermoRecord, len(species)),
		eq:        eq,
	}
	for i, name := range species {
		if _, dup := S.index[name]; dup {
			return nil, fmt.Errorf("Duplicate species in species list: %s", name)
		}
		S.index[name] = i
	}
	if store != nil {
		for i, name := range species {
			rec, err := lookupThermo(store, name)
			if err != nil {
				return nil, fmt.Errorf("NewReactionSystem: reading coefficients for %s: %v", name, err)
			}
			S.thermo[i] = rec
		}
	}
	ids := make(map[string]bool, len(reactions))
	for _, r := range reactions {
		if ids[r.ID] {
			return nil, fmt.Errorf("Duplicate reaction id: %s", r.ID)
		}
		ids[r.ID] = true
		for name := range r.Reactants {
			if _, ok := S.index[name]; !ok {
				return nil, fmt.Errorf("Reaction %s: reactant %s is not in the species list", r.ID, name)
			}
		}
		for name := range r.Products {
			if _, ok := S.index[name]; !ok {
				return nil, fmt.Errorf("Reaction %s: product %s is not in the species list", r.ID, name)
			}
		}
	}
	return S, nil
}

// NSpecies returns I, the number of species in the system.
func (S *ReactionSystem) NSpecies() int { return len(S.Species) }

// NReactions returns J, the number of reactions in the system.
func (S *ReactionSystem) NReactions() int { return len(S.Reactions) }

// SpeciesIndex returns the index of the named species, or -1 if it does not
// belong to the system.
func (S *ReactionSystem) SpeciesIndex(name string) int {
	i, ok := S.index[name]
	if !ok {
		return -1
	}
	return i
}
