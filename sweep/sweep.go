/*
 * sweep.go, part of chemkin.
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

//Package sweep evaluates a reaction system over a range of temperatures at
//fixed concentrations, one full, independent evaluation per sample point,
//and exports the collected rates. The engine itself never batches; this is
//the external loop the plotting and web layers use.
package sweep

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/chemkinetics/chemkin"
)

// Point holds the rates of one temperature sample: progress rates in
// reaction order and production rates in species order.
type Point struct {
	T          float64
	Progress   []float64
	Production []float64
}

// Sweep is the result of evaluating a system over a temperature grid.
type Sweep struct {
	Species   []string
	Equations []string
	Points    []Point
}

// Run evaluates the system at n temperatures evenly spaced on [tLow, tHigh],
// at the given concentrations. n must be at least 2 and tLow < tHigh.
func Run(sys *chemkin.ReactionSystem, concs []float64, tLow, tHigh float64, n int) (*Sweep, error) {
	if n < 2 {
		return nil, fmt.Errorf("A sweep needs at least 2 points, got %d", n)
	}
	if tLow >= tHigh {
		return nil, fmt.Errorf("Bad temperature range [%v, %v]", tLow, tHigh)
	}
	sw := &Sweep{
		Species:   sys.Species,
		Equations: make([]string, 0, sys.NReactions()),
		Points:    make([]Point, 0, n),
	}
	for _, r := range sys.Reactions {
		sw.Equations = append(sw.Equations, r.Equation)
	}
	step := (tHigh - tLow) / float64(n-1)
	for i := 0; i < n; i++ {
		T := tLow + float64(i)*step
		progress, err := sys.ProgressRates(concs, T)
		if err != nil {
			return nil, fmt.Errorf("Sweep point T=%v: %v", T, err)
		}
		production, err := sys.ProductionRates(progress)
		if err != nil {
			return nil, fmt.Errorf("Sweep point T=%v: %v", T, err)
		}
		sw.Points = append(sw.Points, Point{T: T, Progress: progress, Production: production})
	}
	return sw, nil
}

// WriteCSV writes the sweep as CSV: a header with the temperature column,
// one progress-rate column per reaction and one production-rate column per
// species, then one row per sample point.
func (sw *Sweep) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"T"}
	for _, eq := range sw.Equations {
		header = append(header, "r("+eq+")")
	}
	for _, sp := range sw.Species {
		header = append(header, "omega("+sp+")")
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, 0, len(header))
	for _, p := range sw.Points {
		row = row[:0]
		row = append(row, strconv.FormatFloat(p.T, 'g', -1, 64))
		for _, v := range p.Progress {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		for _, v := range p.Production {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes the sweep as CSV to the named file, compressing according to
// the suffix: .zst gets zstandard, .gz gets gzip, anything else is written
// plain.
func (sw *Sweep) Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var h io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		h = gzip.NewWriter(f)
	default:
		return sw.WriteCSV(f)
	}
	if err != nil {
		return err
	}
	if err := sw.WriteCSV(h); err != nil {
		h.Close()
		return err
	}
	return h.Close()
}
