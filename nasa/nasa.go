/*
 * nasa.go, part of chemkin.
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

//Package nasa persists NASA 7-coefficient thermodynamic polynomials in an
//SQLite database, one row per species in each of two tables, "low" and
//"high", holding the validity bounds and the seven coefficients of that
//temperature range. It is a pure key-value layer: no kinetics happens here.
package nasa

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// The two valid temperature-range literals.
const (
	Low  = "low"
	High = "high"
)

// Fit is one NASA polynomial fit: seven coefficients valid on [TMin, TMax].
type Fit struct {
	TMin   float64
	TMax   float64
	Coeffs [7]float64
}

// SpeciesData carries the fits of one species into Load. Exactly two fits
// per species are required; which is "low" and which "high" is decided by
// numeric comparison of their TMax bounds.
type SpeciesData struct {
	Name string
	Fits []Fit
}

// Store is an SQLite-backed coefficient store. It is safe for concurrent
// reads; Load must not run concurrently with readers.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the coefficient database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, table := range []string{Low, High} {
		if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			species_name TEXT PRIMARY KEY NOT NULL,
			tlow REAL, thigh REAL,
			coeff_1 REAL, coeff_2 REAL, coeff_3 REAL, coeff_4 REAL,
			coeff_5 REAL, coeff_6 REAL, coeff_7 REAL
		)`, table)); err != nil {
			db.Close()
			return nil, fmt.Errorf("create %s table: %w", table, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Coeffs returns the seven coefficients and the validity bounds of the named
// species in the given temperature range, which must be the literal "low" or
// "high" (anything else is a RangeError). A species without a row in the
// requested table yields a NotFoundError.
func (s *Store) Coeffs(species, tempRange string) ([7]float64, float64, float64, error) {
	var coeffs [7]float64
	if tempRange != Low && tempRange != High {
		return coeffs, 0, 0, &RangeError{Range: tempRange}
	}
	query := fmt.Sprintf(`SELECT coeff_1, coeff_2, coeff_3, coeff_4, coeff_5, coeff_6, coeff_7, tlow, thigh
		FROM %s WHERE species_name = ?`, tempRange)
	var tmin, tmax float64
	err := s.db.QueryRow(query, species).Scan(
		&coeffs[0], &coeffs[1], &coeffs[2], &coeffs[3], &coeffs[4], &coeffs[5], &coeffs[6],
		&tmin, &tmax)
	if err == sql.ErrNoRows {
		return coeffs, 0, 0, &NotFoundError{Species: species, Range: tempRange}
	}
	if err != nil {
		return coeffs, 0, 0, fmt.Errorf("query %s coefficients for %s: %w", tempRange, species, err)
	}
	return coeffs, tmin, tmax, nil
}

// Load replaces the entire contents of both tables with the given species
// data, in one transaction: on any error nothing of the previous contents is
// lost. Every species must come with exactly two fits; the fit with the
// numerically larger TMax becomes the "high" range, the other the "low" one.
func (s *Store) Load(data []SpeciesData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()
	for _, table := range []string{Low, High} {
		if _, err := tx.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("clear %s table: %w", table, err)
		}
	}
	insert := func(table string, name string, f Fit) error {
		_, err := tx.Exec(fmt.Sprintf(`INSERT INTO %s
			(species_name, tlow, thigh, coeff_1, coeff_2, coeff_3, coeff_4, coeff_5, coeff_6, coeff_7)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, table),
			name, f.TMin, f.TMax,
			f.Coeffs[0], f.Coeffs[1], f.Coeffs[2], f.Coeffs[3],
			f.Coeffs[4], f.Coeffs[5], f.Coeffs[6])
		return err
	}
	for _, sp := range data {
		if len(sp.Fits) != 2 {
			return fmt.Errorf("Species %s has %d NASA polynomial fits, need exactly 2", sp.Name, len(sp.Fits))
		}
		for _, f := range sp.Fits {
			if f.TMin > f.TMax {
				return fmt.Errorf("Species %s has an inverted validity range [%v, %v]", sp.Name, f.TMin, f.TMax)
			}
		}
		low, high := sp.Fits[0], sp.Fits[1]
		if low.TMax > high.TMax {
			low, high = high, low
		}
		if err := insert(Low, sp.Name, low); err != nil {
			return fmt.Errorf("insert low fit for %s: %w", sp.Name, err)
		}
		if err := insert(High, sp.Name, high); err != nil {
			return fmt.Errorf("insert high fit for %s: %w", sp.Name, err)
		}
	}
	return tx.Commit()
}

//Errors

// RangeError reports a temperature-range argument other than "low" or
// "high".
type RangeError struct {
	Range string
	deco  []string
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("nasa: temperature range must be %q or %q, got %q", Low, High, err.Range)
}

func (err *RangeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// NotFoundError reports a species with no coefficients stored for the
// requested range. It is distinguishable from a RangeError by its NotFound
// method, which the engine uses to allow mixed systems.
type NotFoundError struct {
	Species string
	Range   string
	deco    []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("nasa: coefficients for %s (%s range) are not defined", err.Species, err.Range)
}

func (err *NotFoundError) NotFound() bool { return true }

func (err *NotFoundError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
