/*
 * doc.go, part of chemkin.
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

/*Package chemkin computes chemical reaction kinetics for systems of elementary
reactions: given the stoichiometry and rate law of each reaction and the NASA
7-coefficient thermodynamic polynomials of each species, it evaluates
per-reaction progress rates and per-species production rates at a given
temperature and concentration vector.



	**chemkin capabilities**


    Builds a validated reaction system from a species list and a reaction list
	(duplicate reaction identifiers and references to unknown species are
	rejected at construction).

    Computes reactant and product stoichiometric matrices.

    Evaluates forward rate coefficients from polymorphic rate laws: constant,
	Arrhenius and modified Arrhenius.

    Derives backward rate coefficients of reversible reactions from NASA
	polynomial thermodynamics, through an equilibrium evaluator (package
	thermochem supplies the standard one).

    Computes mass-action progress rates and net production rates, failing fast
	on any non-physical input (negative concentrations, coefficients or
	exponents).

    Subpackages: nasa (SQLite-backed NASA coefficient store), parser (reaction
	XML), thermochem (equilibrium constants), sweep (temperature sweeps and
	compressed export), kinplot (rate plots), web (HTTP front end).

A ReactionSystem is immutable after construction, performs no I/O during
evaluation, and is safe for concurrent read-only use provided the coefficient
store it was built from allows concurrent reads.
*/
package chemkin
