/*
 * kinplot.go, part of chemkin.
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

//Package kinplot draws progress-rate and production-rate curves over a
//temperature sweep, one line per reaction or per species.
package kinplot

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/chemkinetics/chemkin/sweep"
)

func basicRatePlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "T (K)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// ProgressRates plots the progress rate of every reaction against
// temperature, one labeled line per reaction equation.
func ProgressRates(sw *sweep.Sweep, title string) (*plot.Plot, error) {
	p := basicRatePlot(title, "progress rate")
	for j, eq := range sw.Equations {
		pts := make(plotter.XYs, len(sw.Points))
		for i, point := range sw.Points {
			pts[i].X = point.T
			pts[i].Y = point.Progress[j]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(j)
		p.Add(l)
		p.Legend.Add(eq, l)
	}
	return p, nil
}

// ProductionRates plots the net production rate of every species against
// temperature, one labeled line per species.
func ProductionRates(sw *sweep.Sweep, title string) (*plot.Plot, error) {
	p := basicRatePlot(title, "production rate")
	for i, sp := range sw.Species {
		pts := make(plotter.XYs, len(sw.Points))
		for k, point := range sw.Points {
			pts[k].X = point.T
			pts[k].Y = point.Production[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(sp, l)
	}
	return p, nil
}

// SavePNG writes the plot as a PNG file.
func SavePNG(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}

// EncodePNG renders the plot as a PNG with the given size in pixels at 96
// DPI and returns it base64-encoded, for embedding in a JSON response or an
// HTML page.
func EncodePNG(p *plot.Plot, widthPx, heightPx int) (string, error) {
	w := vg.Length(widthPx) * vg.Inch / 96
	h := vg.Length(heightPx) * vg.Inch / 96
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
